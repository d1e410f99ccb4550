package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// RegistrationHandler serves the /registrations/ endpoints.
type RegistrationHandler struct {
	ledger usecase.RegistrationLedger
	logger *slog.Logger
}

// NewRegistrationHandler creates a new RegistrationHandler instance.
func NewRegistrationHandler(ledger usecase.RegistrationLedger, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{ledger: ledger, logger: logger}
}

// ListRegistrations handles GET /registrations/ and returns the raw
// registration key pairs, not joined with user or event detail.
func (h *RegistrationHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	regs, err := h.ledger.ListRegistrations(r.Context())
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, regs, h.logger)
}

// ListEventsForUser handles GET /registrations/{username} and returns
// the events the user is registered for. An unknown user gets an
// empty list, not a 404.
func (h *RegistrationHandler) ListEventsForUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	events, err := h.ledger.ListEventsForUser(r.Context(), username)
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, events, h.logger)
}

// CancelRegistration handles DELETE /registrations/{username}/{event_id}.
// The user, the event and the registration are validated before the
// delete; a missing one yields a 404 rather than a silent no-op.
func (h *RegistrationHandler) CancelRegistration(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	eventID, err := strconv.ParseInt(chi.URLParam(r, "event_id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event id", h.logger)
		return
	}

	if err := h.ledger.CancelRegistration(r.Context(), username, eventID); err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("registration cancelled", "username", username, "event_id", eventID)
	respondWithJSON(w, http.StatusOK, "Registration deleted successfully", h.logger)
}
