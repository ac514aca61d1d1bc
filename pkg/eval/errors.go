package eval

import "fmt"

// ParseError reports a number token whose literal cannot be parsed
// as a decimal value, e.g. "1..2".
type ParseError struct {
	Literal string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid number literal %q", e.Literal)
}

// UnderflowError reports a pop from a stack with too few entries:
// an operator evaluated with fewer than two operands, or an
// unmatched ")" with no "(" left on the operator stack during
// infix-to-postfix conversion.
type UnderflowError struct {
	Message string
}

func (e *UnderflowError) Error() string {
	return e.Message
}

// DivisionByZeroError reports a ÷ whose divisor operand is exactly
// zero. It is kept distinct from the other failure kinds because
// callers surface it differently (a math error rather than a syntax
// error).
type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string {
	return "division by zero"
}

// InvalidExpressionError reports a postfix evaluation that did not
// end with exactly one value on the operand stack, e.g. consecutive
// numbers with no operator between them.
type InvalidExpressionError struct {
	Remaining int // values left on the operand stack
}

func (e *InvalidExpressionError) Error() string {
	return fmt.Sprintf("invalid expression: %d values left on the operand stack", e.Remaining)
}

// UnknownOperatorError reports a token that reached the evaluator
// without being a number or one of the four supported operators.
// Given the tokenizer's alphabet this only happens for a "(" flushed
// out of the operator stack by an unmatched parenthesis.
type UnknownOperatorError struct {
	Literal string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator %q", e.Literal)
}

// Common error messages
const (
	errUnmatchedRParen = "unmatched ) with no opening parenthesis"
	errMissingOperands = "operator %s requires two operands"
)
