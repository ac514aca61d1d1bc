package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"single number", "42", 42},
		{"addition", "2+3", 5},
		{"subtraction", "10-4", 6},
		{"multiplication", "6×7", 42},
		{"division", "10÷4", 2.5},
		{"precedence", "2+3×4", 14},
		{"parentheses override precedence", "(2+3)×4", 20},
		{"left associativity", "2-3+4", 3},
		{"division chain", "8÷4÷2", 1},
		{"decimals", "1.5+2.25", 3.75},
		{"ascii operators", "6*7/2", 21},
		{"whitespace insensitivity", "2 + 3", 5},
		{"nested parentheses", "((1+2)×(3+4))", 21},
		{"letters dropped makes input valid", "2a+3b", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvaluateWhitespaceEquivalence(t *testing.T) {
	spaced, err := Evaluate("2 + 3")
	require.NoError(t, err)
	plain, err := Evaluate("2+3")
	require.NoError(t, err)
	assert.Equal(t, plain, spaced)
}

func TestEvaluateDivisionByZero(t *testing.T) {
	_, err := Evaluate("10÷0")
	require.Error(t, err)

	var divZero *DivisionByZeroError
	assert.ErrorAs(t, err, &divZero)
	assert.EqualError(t, err, "division by zero")
}

func TestEvaluateDivisionByZeroASCII(t *testing.T) {
	_, err := Evaluate("1/0")
	var divZero *DivisionByZeroError
	assert.ErrorAs(t, err, &divZero)
}

func TestEvaluateParseError(t *testing.T) {
	_, err := Evaluate("1..2+3")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "1..2", parseErr.Literal)
}

func TestEvaluateUnderflow(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"trailing operator", "3+"},
		{"leading operator", "+3"},
		{"operator only", "×"},
		{"unmatched left paren", "(2+3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.input)
			require.Error(t, err)

			var underflow *UnderflowError
			assert.ErrorAs(t, err, &underflow)
		})
	}
}

func TestEvaluateInvalidExpression(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		remaining int
	}{
		{"empty input", "", 0},
		{"whitespace only", "   ", 0},
		{"parenthesized numbers with no operator", "(1)(2)", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.input)
			require.Error(t, err)

			var invalid *InvalidExpressionError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.remaining, invalid.Remaining)
		})
	}
}

// A stray "(" flushed out of the operator stack reaches the
// evaluator; with two operands available it fails as an unknown
// operator rather than an underflow.
func TestEvaluateUnknownOperator(t *testing.T) {
	_, err := Evaluate("2+3×(")
	require.Error(t, err)

	var unknownOp *UnknownOperatorError
	require.ErrorAs(t, err, &unknownOp)
	assert.Equal(t, "(", unknownOp.Literal)
}

func TestEvaluatePostfixDirect(t *testing.T) {
	got, err := EvaluatePostfix(Tokenize("2 3")) // "23" as postfix: one number
	require.NoError(t, err)
	assert.Equal(t, 23.0, got)
}
