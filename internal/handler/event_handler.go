package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/domain"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// EventHandler serves the /events/ endpoints, including the
// registration entry point POST /events/{id}/register.
type EventHandler struct {
	events usecase.EventRegistry
	ledger usecase.RegistrationLedger
	logger *slog.Logger
}

// NewEventHandler creates a new EventHandler instance.
func NewEventHandler(events usecase.EventRegistry, ledger usecase.RegistrationLedger, logger *slog.Logger) *EventHandler {
	return &EventHandler{events: events, ledger: ledger, logger: logger}
}

// eventIDFromURL parses the {id} path parameter.
func eventIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// ListEvents handles GET /events/ and returns the events list.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListEvents(r.Context())
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, events, h.logger)
}

// CreateEvent handles POST /events/ and adds a new event. The id is
// assigned by the storage engine.
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var newEvent domain.EventCreate
	if err := json.NewDecoder(r.Body).Decode(&newEvent); err != nil {
		h.logger.Warn("invalid event payload", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	event, err := h.events.CreateEvent(r.Context(), newEvent)
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("event created", "event_id", event.ID)
	respondWithJSON(w, http.StatusOK, "Event successfully created.", h.logger)
}

// GetEventByID handles GET /events/{id}.
func (h *EventHandler) GetEventByID(w http.ResponseWriter, r *http.Request) {
	id, err := eventIDFromURL(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event id", h.logger)
		return
	}

	event, err := h.events.GetEventByID(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, event, h.logger)
}

// UpdateEvent handles PUT /events/{id} and replaces all mutable
// fields. Registrations for the event are preserved.
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := eventIDFromURL(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event id", h.logger)
		return
	}

	var update domain.EventUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logger.Warn("invalid event payload", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if err := h.events.UpdateEvent(r.Context(), id, update); err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("event updated", "event_id", id)
	respondWithJSON(w, http.StatusOK, "Event successfully updated.", h.logger)
}

// DeleteAllEvents handles DELETE /events/ and wipes every event
// together with every registration.
func (h *EventHandler) DeleteAllEvents(w http.ResponseWriter, r *http.Request) {
	if err := h.events.DeleteAllEvents(r.Context()); err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("all events deleted")
	respondWithJSON(w, http.StatusOK, "Events successfully deleted.", h.logger)
}

// DeleteEvent handles DELETE /events/{id} and cascades the delete to
// the event's registrations.
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := eventIDFromURL(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event id", h.logger)
		return
	}

	if err := h.events.DeleteEvent(r.Context(), id); err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("event deleted", "event_id", id)
	respondWithJSON(w, http.StatusOK, "Event successfully deleted.", h.logger)
}

// RegisterUser handles POST /events/{id}/register. The body carries
// the identity payload of the user being registered.
func (h *EventHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	id, err := eventIDFromURL(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid event id", h.logger)
		return
	}

	var identity domain.RegistrationCreate
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		h.logger.Warn("invalid registration payload", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if err := h.ledger.RegisterUser(r.Context(), id, identity); err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("user registered to event", "username", identity.Username, "event_id", id)
	respondWithJSON(w, http.StatusOK, "User successfully registered.", h.logger)
}
