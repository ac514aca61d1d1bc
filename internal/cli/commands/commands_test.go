package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcalc/quickcalc/internal/cli/config"
)

// execute runs a command with the given context and args, returning
// its stdout.
func execute(t *testing.T, ctx context.Context, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}

func jsonConfig() context.Context {
	cfg := config.FromContext(context.Background())
	cfg.OutputFormat = "json"
	return config.WithConfig(context.Background(), cfg)
}

func TestEvalCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"precedence", []string{"2+3×4"}, "14\n"},
		{"parentheses", []string{"(2+3)×4"}, "20\n"},
		{"args joined", []string{"(2", "+", "3)×4"}, "20\n"},
		{"fraction trimmed", []string{"1÷2"}, "0.5\n"},
		{"ascii operators", []string{"6*7"}, "42\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, context.Background(), NewEvalCommand(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEvalCommandRaw(t *testing.T) {
	out, err := execute(t, context.Background(), NewEvalCommand(), "--raw", "1÷3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "0.3333333333333333"), "got %q", out)
}

func TestEvalCommandJSON(t *testing.T) {
	out, err := execute(t, jsonConfig(), NewEvalCommand(), "2+3")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "2+3", body["expression"])
	assert.Equal(t, 5.0, body["result"])
	assert.Equal(t, "5", body["display"])
}

func TestEvalCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantMsg string
	}{
		{"division by zero", "10÷0", "Math Error: division by zero"},
		{"syntax error", "3+", "Syntax Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, context.Background(), NewEvalCommand(), tt.expr)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestTokensCommand(t *testing.T) {
	out, err := execute(t, context.Background(), NewTokensCommand(), "(2+3)×4")
	require.NoError(t, err)
	assert.Equal(t, "( 2 + 3 ) × 4\n", out)
}

func TestTokensCommandJSON(t *testing.T) {
	out, err := execute(t, jsonConfig(), NewTokensCommand(), "2+3")
	require.NoError(t, err)

	var tokens []tokenJSON
	require.NoError(t, json.Unmarshal([]byte(out), &tokens))
	require.Len(t, tokens, 3)
	assert.Equal(t, tokenJSON{Type: "NUMBER", Literal: "2"}, tokens[0])
	assert.Equal(t, tokenJSON{Type: "+", Literal: "+"}, tokens[1])
}

func TestTokensCommandEmpty(t *testing.T) {
	out, err := execute(t, context.Background(), NewTokensCommand(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "(no tokens)\n", out)
}

func TestPostfixCommand(t *testing.T) {
	out, err := execute(t, context.Background(), NewPostfixCommand(), "2+3×4")
	require.NoError(t, err)
	assert.Equal(t, "2 3 4 × +\n", out)
}

func TestPostfixCommandUnmatchedParen(t *testing.T) {
	_, err := execute(t, context.Background(), NewPostfixCommand(), "2+3)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmatched )")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, context.Background(), NewVersionCommand("1.2.3"))
	require.NoError(t, err)
	assert.Equal(t, "quickcalc v1.2.3\n", out)
}
