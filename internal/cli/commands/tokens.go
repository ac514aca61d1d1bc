package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quickcalc/quickcalc/internal/cli/config"
	"github.com/quickcalc/quickcalc/pkg/eval"
)

// NewTokensCommand creates the tokens command, which shows the token
// stream the tokenizer produces for an expression.
func NewTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <expression>...",
		Short: "Show the token stream for an expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			tokens := eval.Tokenize(strings.Join(args, " "))
			return renderTokens(cmd.OutOrStdout(), tokens, resolveFormat(cmd, cfg))
		},
	}
}

// NewPostfixCommand creates the postfix command, which shows the
// Reverse Polish form of an expression after shunting-yard
// conversion.
func NewPostfixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "postfix <expression>...",
		Short: "Show the postfix (RPN) form of an expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			postfix, err := eval.ToPostfix(eval.Tokenize(strings.Join(args, " ")))
			if err != nil {
				return fmt.Errorf("conversion failed: %w", err)
			}
			return renderTokens(cmd.OutOrStdout(), postfix, resolveFormat(cmd, cfg))
		},
	}
}
