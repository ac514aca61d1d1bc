// Package token defines the token types shared by the expression
// tokenizer, the infix-to-postfix converter, and the postfix evaluator.
package token

import "fmt"

// Type represents the type of a lexical token.
type Type int32

const (
	// Literals
	NUMBER Type = iota // 123, 45.67

	// Operators
	PLUS  // +
	MINUS // -
	STAR  // × (multiplication)
	SLASH // ÷ (division)

	// Delimiters
	LPAREN // (
	RPAREN // )
)

// String returns a human-readable representation of the token type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// typeNames maps token types to their string representations.
var typeNames = map[Type]string{
	NUMBER: "NUMBER",
	PLUS:   "+",
	MINUS:  "-",
	STAR:   "×",
	SLASH:  "÷",
	LPAREN: "(",
	RPAREN: ")",
}

// IsOperator returns true if the token type is one of the four
// binary arithmetic operators.
func IsOperator(t Type) bool {
	return t >= PLUS && t <= SLASH
}

// Precedence returns the binding strength of an operator type.
// Additive operators bind at 1, multiplicative at 2. Every other
// type (including parentheses, which act as barriers during
// conversion and are never compared by precedence) returns 0.
func Precedence(t Type) int {
	switch t {
	case PLUS, MINUS:
		return 1
	case STAR, SLASH:
		return 2
	default:
		return 0
	}
}

// Token represents a single lexical token. Number tokens keep their
// literal digit string as spelled in the input; it is parsed into a
// numeric value only during postfix evaluation.
type Token struct {
	Type    Type
	Literal string
}

func (t Token) String() string {
	if t.Type == NUMBER {
		return t.Literal
	}
	return t.Type.String()
}
