package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/quickcalc/quickcalc/internal/cli/config"
	"github.com/quickcalc/quickcalc/internal/display"
	"github.com/quickcalc/quickcalc/pkg/eval"
)

var (
	resultStyle = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive calculator session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}
}

func runREPL(cmd *cobra.Command) error {
	cfg := config.FromContext(cmd.Context())
	precision := cfg.Precision

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "calc> ",
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "quickcalc REPL")
	_, _ = fmt.Fprintln(out, faintStyle.Render("Type an expression, .help for commands, .quit to exit"))
	_, _ = fmt.Fprintln(out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			quit, newPrecision := handleDotCommand(cmd, line, precision)
			if quit {
				break
			}
			precision = newPrecision
			continue
		}

		result, err := eval.Evaluate(line)
		if err != nil {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(display.FormatError(err)))
			continue
		}
		_, _ = fmt.Fprintln(out, resultStyle.Render(display.FormatResult(result, precision)))
	}

	return nil
}

// handleDotCommand dispatches a REPL dot-command. It returns whether
// the loop should exit, and the (possibly updated) display precision.
func handleDotCommand(cmd *cobra.Command, line string, precision int) (bool, int) {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])
	arg := strings.TrimSpace(strings.TrimPrefix(line, parts[0]))

	switch command {
	case ".quit", ".exit":
		return true, precision

	case ".help":
		printREPLHelp(out)

	case ".tokens":
		if arg == "" {
			_, _ = fmt.Fprintln(errOut, "Usage: .tokens <expression>")
			break
		}
		if err := renderTokensText(out, eval.Tokenize(arg)); err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		}

	case ".postfix":
		if arg == "" {
			_, _ = fmt.Fprintln(errOut, "Usage: .postfix <expression>")
			break
		}
		postfix, err := eval.ToPostfix(eval.Tokenize(arg))
		if err != nil {
			_, _ = fmt.Fprintln(errOut, errorStyle.Render(display.FormatError(err)))
			break
		}
		if err := renderTokensText(out, postfix); err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		}

	case ".precision":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 || n > 15 {
			_, _ = fmt.Fprintln(errOut, "Usage: .precision <0-15>")
			break
		}
		return false, n

	case ".clear":
		fmt.Print("\033[H\033[2J")

	default:
		_, _ = fmt.Fprintf(errOut, "Unknown command: %s (type .help for commands)\n", command)
	}

	return false, precision
}

func printREPLHelp(w io.Writer) {
	_, _ = fmt.Fprintln(w, `Commands:
  .tokens <expr>     Show the token stream for an expression
  .postfix <expr>    Show the postfix (RPN) form of an expression
  .precision <n>     Set display precision (0-15)
  .clear             Clear the screen
  .quit, .exit       Exit the REPL

Anything else is evaluated as an arithmetic expression.`)
}
