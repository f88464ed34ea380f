package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/codexa/backend/internal/repository"
	"github.com/codexa/backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Validation codes go back verbatim; everything else gets a fixed code.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Code)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials")
	case errors.Is(err, service.ErrAccessDenied):
		writeError(w, http.StatusForbidden, "access_denied")
	case errors.Is(err, service.ErrStoreUnavailable):
		slog.Error("store call failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "store_unavailable")
	default:
		slog.Error("unexpected error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error")
	}
}
