package apperror

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the JSON error body returned to clients
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON encodes v as the response body with the given status code
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already out, nothing left to do but log
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// WriteError maps err to a status code and JSON body. Unrecognized errors are
// treated as internal; server-side failures are logged with their wrapped
// cause, while the client only ever sees the AppError message.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	logger := hlog.FromRequest(r)

	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewInternalError("internal server error", err)
	}

	status := appErr.StatusCode()
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
		WriteJSON(w, status, ErrorResponse{Error: "internal server error"})
		return
	}

	logger.Debug().Err(err).Str("path", r.URL.Path).Int("status", status).Msg("Request rejected")
	WriteJSON(w, status, ErrorResponse{Error: appErr.Message})
}
