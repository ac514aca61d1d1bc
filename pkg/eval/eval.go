package eval

import (
	"fmt"
	"strconv"

	"github.com/quickcalc/quickcalc/pkg/token"
)

// Evaluate computes the numeric value of an infix arithmetic
// expression. It is the sole entry point callers need; the staged
// functions are exported for inspection tooling.
//
// Failures are returned as one of the classified error types in this
// package, never panics.
func Evaluate(expression string) (float64, error) {
	postfix, err := ToPostfix(Tokenize(expression))
	if err != nil {
		return 0, err
	}
	return EvaluatePostfix(postfix)
}

// EvaluatePostfix walks a postfix token sequence with an operand
// stack and returns the single remaining value.
//
// Number literals are parsed here, so a malformed literal such as
// "1..2" surfaces as a ParseError from this stage rather than from
// the tokenizer.
func EvaluatePostfix(postfix []token.Token) (float64, error) {
	var stack []float64

	for _, tok := range postfix {
		if tok.Type == token.NUMBER {
			v, err := strconv.ParseFloat(tok.Literal, 64)
			if err != nil {
				return 0, &ParseError{Literal: tok.Literal}
			}
			stack = append(stack, v)
			continue
		}

		if len(stack) < 2 {
			return 0, &UnderflowError{Message: fmt.Sprintf(errMissingOperands, tok.Literal)}
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		var result float64
		switch tok.Type {
		case token.PLUS:
			result = a + b
		case token.MINUS:
			result = a - b
		case token.STAR:
			result = a * b
		case token.SLASH:
			if b == 0 {
				return 0, &DivisionByZeroError{}
			}
			result = a / b
		default:
			return 0, &UnknownOperatorError{Literal: tok.Literal}
		}
		stack = append(stack, result)
	}

	if len(stack) != 1 {
		return 0, &InvalidExpressionError{Remaining: len(stack)}
	}
	return stack[0], nil
}
