package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/acpilot/acpilot/internal/rules"
	"github.com/acpilot/acpilot/internal/store"
)

// errBadRequest marks errors caused by a malformed request.
var errBadRequest = errors.New("bad request")

func statusCode(err error) int {
	var validationErr *rules.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrCapacityExceeded):
		return http.StatusConflict
	case errors.Is(err, store.ErrLockTimeout):
		return http.StatusServiceUnavailable
	case errors.As(err, &validationErr), errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, code, map[string]any{"success": false, "error": err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Debug("failed to write response", "err", err)
	}
}
