package eval

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcalc/quickcalc/pkg/token"
)

// rpn renders a token sequence as a space-separated string for
// compact test assertions.
func rpn(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}

func TestToPostfix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single number", "42", "42"},
		{"addition", "2+3", "2 3 +"},
		{"precedence orders multiplication first", "2+3×4", "2 3 4 × +"},
		{"parentheses override precedence", "(2+3)×4", "2 3 + 4 ×"},
		{"left associativity on ties", "2-3+4", "2 3 - 4 +"},
		{"division ties pop left to right", "8÷4÷2", "8 4 ÷ 2 ÷"},
		{"nested parentheses", "((1+2)×(3+4))", "1 2 + 3 4 + ×"},
		{"mixed precedence chain", "1+2×3-4÷2", "1 2 3 × + 4 2 ÷ -"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToPostfix(Tokenize(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, rpn(got))
		})
	}
}

func TestToPostfixUnmatchedRightParen(t *testing.T) {
	_, err := ToPostfix(Tokenize("2+3)"))
	require.Error(t, err)

	var underflow *UnderflowError
	require.ErrorAs(t, err, &underflow)
	assert.Contains(t, underflow.Message, "unmatched )")
}

// An unmatched "(" is flushed into the output instead of erroring;
// the evaluator rejects it downstream.
func TestToPostfixUnmatchedLeftParenFlushed(t *testing.T) {
	got, err := ToPostfix(Tokenize("(2+3"))
	require.NoError(t, err)
	assert.Equal(t, "2 3 + (", rpn(got))
}

func TestToPostfixEmptyInput(t *testing.T) {
	got, err := ToPostfix(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
