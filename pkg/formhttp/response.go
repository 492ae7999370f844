package formhttp

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formulate/pkg/logger"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders err as {"error": {...}}. Errors that are not an
// HTTPError become a 500 whose message does not leak the cause.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	httpErr := ErrInternal
	message := http.StatusText(http.StatusInternalServerError)

	var he HTTPError
	if errors.As(err, &he) {
		httpErr = he
		message = err.Error()
	}

	level := slog.LevelWarn
	if httpErr.Code >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.Log(r.Context(), level, "request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", httpErr.Code),
		logger.Error(err),
	)

	writeJSON(w, httpErr.Code, errorBody{Error: errorDetail{Code: httpErr.Key, Message: message}})
}
