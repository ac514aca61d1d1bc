package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quickcalc/quickcalc/internal/cli/config"
	"github.com/quickcalc/quickcalc/internal/display"
	"github.com/quickcalc/quickcalc/pkg/eval"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate an arithmetic expression",
		Long: `Evaluate an arithmetic expression and print the result.

Multiple arguments are joined into a single expression, so both of
these are equivalent:

  quickcalc eval "(2+3)×4"
  quickcalc eval "(2" + "3)×4"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			logger := config.GetLogger(cmd.Context())

			expression := strings.Join(args, " ")
			logger.Debug("evaluating expression", "expression", expression)

			result, err := eval.Evaluate(expression)
			if err != nil {
				return fmt.Errorf("%s: %w", display.FormatError(err), err)
			}

			formatted := display.FormatResult(result, cfg.Precision)
			switch {
			case resolveFormat(cmd, cfg) == "json":
				return renderResultJSON(cmd.OutOrStdout(), expression, result, formatted)
			case raw:
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(result, 'g', -1, 64))
			default:
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatted)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the full float value without display formatting")

	return cmd
}
