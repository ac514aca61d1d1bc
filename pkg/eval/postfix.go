package eval

import "github.com/quickcalc/quickcalc/pkg/token"

// ToPostfix converts an infix token sequence into postfix (Reverse
// Polish) order using the shunting-yard algorithm.
//
// Ties between equal-precedence operators resolve by popping, which
// gives the four operators their conventional left associativity.
// An unmatched ")" fails with an UnderflowError. An unmatched "(" is
// not detected here: whatever remains on the operator stack at the
// end of input is flushed into the output as-is, and the stray "("
// is rejected later by the evaluator.
func ToPostfix(tokens []token.Token) ([]token.Token, error) {
	output := make([]token.Token, 0, len(tokens))
	var stack []token.Token

	for _, tok := range tokens {
		switch {
		case tok.Type == token.NUMBER:
			output = append(output, tok)

		case tok.Type == token.LPAREN:
			stack = append(stack, tok)

		case tok.Type == token.RPAREN:
			for len(stack) > 0 && stack[len(stack)-1].Type != token.LPAREN {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, &UnderflowError{Message: errUnmatchedRParen}
			}
			stack = stack[:len(stack)-1] // discard the "("

		default: // operator
			for len(stack) > 0 && token.Precedence(stack[len(stack)-1].Type) >= token.Precedence(tok.Type) {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		}
	}

	// Drain the stack, unmatched "(" included.
	for len(stack) > 0 {
		output = append(output, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}

	return output, nil
}
