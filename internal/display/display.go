// Package display formats evaluation results and errors for
// user-facing output.
package display

import (
	"errors"
	"strconv"
	"strings"

	"github.com/quickcalc/quickcalc/pkg/eval"
)

// DefaultPrecision is the number of fractional digits a result is
// rounded to before trailing zeros are stripped.
const DefaultPrecision = 6

// FormatResult renders a numeric result with the given precision,
// then strips trailing zeros and a dangling decimal point, so 2.0
// displays as "2" and 0.5 as "0.5".
func FormatResult(value float64, precision int) string {
	s := strconv.FormatFloat(value, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// FormatError maps an evaluation error to its display message.
// Division by zero is a math error with detail; every other
// evaluation failure collapses to a generic syntax error.
func FormatError(err error) string {
	var divZero *eval.DivisionByZeroError
	if errors.As(err, &divZero) {
		return "Math Error: " + divZero.Error()
	}
	return "Syntax Error"
}

// Evaluate runs an expression through the evaluator and returns the
// display string for its result. Empty or whitespace-only input
// clears the display (returns "") without invoking the evaluator.
func Evaluate(expression string, precision int) string {
	if strings.TrimSpace(expression) == "" {
		return ""
	}
	result, err := eval.Evaluate(expression)
	if err != nil {
		return FormatError(err)
	}
	return FormatResult(result, precision)
}
