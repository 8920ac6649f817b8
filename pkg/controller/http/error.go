package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/ctxlog"

	"github.com/donbr/raven/pkg/domain/types/apperr"
	"github.com/donbr/raven/pkg/utils/errors"
)

// errorBody is the uniform error envelope of every failing API response.
// The code comes from a fixed vocabulary and the hint tells the caller what
// to do next, so clients never need to parse the message.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Hint    string `json:"hint"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// handleError maps an error to its HTTP status and writes the error envelope
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	errors.Handle(r.Context(), err)

	status := apperr.HTTPStatusFromError(err)
	resp := errorResponse{
		Error: errorBody{
			Code:    apperr.CodeFromError(err),
			Message: err.Error(),
			Hint:    apperr.HintFromError(err),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		ctxlog.From(r.Context()).Error("failed to encode error response", "error", encErr)
	}
}

// respondJSON writes a successful JSON response
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("failed to encode response", "error", err)
	}
}
