package eval

import (
	"unicode/utf8"

	"github.com/quickcalc/quickcalc/pkg/token"
)

// Tokenize scans an infix expression into a flat token sequence.
//
// Digits and "." accumulate into a pending number literal; an
// operator or parenthesis flushes the pending literal (if any) and
// emits its own token. A trailing literal is flushed at end of
// input. Any other character, whitespace included, is dropped.
//
// ASCII "*" and "/" are accepted as aliases for × and ÷ so that
// expressions stay typeable on a plain keyboard.
//
// The pending literal is not validated here: "1.2.3" is emitted as
// a single number token and rejected later, when it is parsed into
// a value during postfix evaluation.
func Tokenize(input string) []token.Token {
	var tokens []token.Token
	var pending []byte

	flush := func() {
		if len(pending) > 0 {
			tokens = append(tokens, token.Token{Type: token.NUMBER, Literal: string(pending)})
			pending = nil
		}
	}

	i := 0
	for i < len(input) {
		ch := input[i]

		if isDigit(ch) || ch == '.' {
			pending = append(pending, ch)
			i++
			continue
		}

		switch ch {
		case '+':
			flush()
			tokens = append(tokens, token.Token{Type: token.PLUS, Literal: "+"})
			i++
		case '-':
			flush()
			tokens = append(tokens, token.Token{Type: token.MINUS, Literal: "-"})
			i++
		case '*':
			flush()
			tokens = append(tokens, token.Token{Type: token.STAR, Literal: "×"})
			i++
		case '/':
			flush()
			tokens = append(tokens, token.Token{Type: token.SLASH, Literal: "÷"})
			i++
		case '(':
			flush()
			tokens = append(tokens, token.Token{Type: token.LPAREN, Literal: "("})
			i++
		case ')':
			flush()
			tokens = append(tokens, token.Token{Type: token.RPAREN, Literal: ")"})
			i++
		default:
			// × and ÷ are multi-byte, so decode a full rune here.
			r, size := utf8.DecodeRuneInString(input[i:])
			switch r {
			case '×':
				flush()
				tokens = append(tokens, token.Token{Type: token.STAR, Literal: "×"})
			case '÷':
				flush()
				tokens = append(tokens, token.Token{Type: token.SLASH, Literal: "÷"})
			default:
				// Unknown character — drop it. Note that whitespace
				// does not flush the pending literal: "1 2" scans as
				// the single number "12", matching the permissive
				// policy callers rely on.
			}
			i += size
		}
	}
	flush()

	return tokens
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
