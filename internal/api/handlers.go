package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quickcalc/quickcalc/internal/display"
	"github.com/quickcalc/quickcalc/pkg/eval"
)

// EvalRequest is the body of POST /api/v1/eval.
type EvalRequest struct {
	Expression string `json:"expression"`
}

// EvalResponse is the success payload of POST /api/v1/eval.
type EvalResponse struct {
	Result  float64 `json:"result"`
	Display string  `json:"display"`
}

// ErrorResponse is the failure payload of POST /api/v1/eval.
type ErrorResponse struct {
	ErrorKind string `json:"error_kind"`
	Message   string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	var req EvalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			ErrorKind: "bad_request",
			Message:   "invalid JSON body",
		})
		return
	}

	result, err := eval.Evaluate(req.Expression)
	if err != nil {
		s.logger.Debug("evaluation failed", "expression", req.Expression, "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			ErrorKind: errorKind(err),
			Message:   display.FormatError(err),
		})
		return
	}

	s.logger.Debug("evaluated expression", "expression", req.Expression, "result", result)
	writeJSON(w, http.StatusOK, EvalResponse{
		Result:  result,
		Display: display.FormatResult(result, s.precision),
	})
}

// errorKind maps an evaluation error to a stable machine-readable
// identifier for API clients.
func errorKind(err error) string {
	var (
		parseErr  *eval.ParseError
		underflow *eval.UnderflowError
		divZero   *eval.DivisionByZeroError
		invalid   *eval.InvalidExpressionError
		unknownOp *eval.UnknownOperatorError
	)
	switch {
	case errors.As(err, &parseErr):
		return "parse_error"
	case errors.As(err, &underflow):
		return "stack_underflow"
	case errors.As(err, &divZero):
		return "division_by_zero"
	case errors.As(err, &invalid):
		return "invalid_expression"
	case errors.As(err, &unknownOp):
		return "unknown_operator"
	default:
		return "evaluation_error"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
