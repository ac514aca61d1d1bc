package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quickcalc/quickcalc/internal/cli/config"
	"github.com/quickcalc/quickcalc/pkg/token"
)

// resolveFormat picks the effective output format. "auto" renders
// tables on a terminal and plain text when piped.
func resolveFormat(cmd *cobra.Command, cfg *config.Config) string {
	format := cfg.OutputFormat
	if format == "" || format == "auto" {
		if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return "table"
		}
		return "text"
	}
	if format == "text" {
		return "text"
	}
	return format
}

// tokenJSON is the JSON shape of a single token.
type tokenJSON struct {
	Type    string `json:"type"`
	Literal string `json:"literal"`
}

func renderTokens(w io.Writer, tokens []token.Token, format string) error {
	switch format {
	case "json":
		return renderTokensJSON(w, tokens)
	case "table":
		renderTokensTable(w, tokens)
		return nil
	default:
		return renderTokensText(w, tokens)
	}
}

func renderTokensTable(w io.Writer, tokens []token.Token) {
	if len(tokens) == 0 {
		_, _ = fmt.Fprintln(w, "(no tokens)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "TYPE", "LITERAL"})
	for i, tok := range tokens {
		t.AppendRow(table.Row{i + 1, tok.Type.String(), tok.Literal})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d tokens)\n", len(tokens))
}

func renderTokensText(w io.Writer, tokens []token.Token) error {
	if len(tokens) == 0 {
		_, _ = fmt.Fprintln(w, "(no tokens)")
		return nil
	}
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	_, _ = fmt.Fprintln(w, strings.Join(parts, " "))
	return nil
}

func renderTokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]tokenJSON, len(tokens))
	for i, tok := range tokens {
		out[i] = tokenJSON{Type: tok.Type.String(), Literal: tok.Literal}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func renderResultJSON(w io.Writer, expression string, result float64, formatted string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"expression": expression,
		"result":     result,
		"display":    formatted,
	})
}
