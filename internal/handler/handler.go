package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/domain"
)

// respondWithJSON writes a JSON response to the client.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError writes a JSON error response with the given detail.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"error": message}, logger)
}

// respondWithDomainError maps the domain error taxonomy to an HTTP
// status: absent entities become 404, uniqueness and identity
// violations become 409, everything else is a 500.
func respondWithDomainError(w http.ResponseWriter, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound):
		respondWithError(w, http.StatusNotFound, err.Error(), logger)
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrIdentityMismatch),
		errors.Is(err, domain.ErrAlreadyRegistered):
		respondWithError(w, http.StatusConflict, err.Error(), logger)
	default:
		logger.Error("unexpected error while handling request", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error", logger)
	}
}
