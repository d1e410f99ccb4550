package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/domain"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// UserHandler serves the /users/ endpoints.
type UserHandler struct {
	users  usecase.UserRegistry
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(users usecase.UserRegistry, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// ListUsers handles GET /users/ and returns the list of existing users.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, users, h.logger)
}

// CreateUser handles POST /users/ and creates a new user.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var newUser domain.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&newUser); err != nil {
		h.logger.Warn("invalid user payload", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if err := h.users.CreateUser(r.Context(), newUser); err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("user created", "username", newUser.Username)
	respondWithJSON(w, http.StatusOK, "User successfully created", h.logger)
}

// GetUserByUsername handles GET /users/{username}.
func (h *UserHandler) GetUserByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.users.GetUserByUsername(r.Context(), username)
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, user, h.logger)
}

// DeleteAllUsers handles DELETE /users/ and wipes every user together
// with every registration. Reports success even on an empty table, so
// "nothing to delete" cannot be mistaken for a failure.
func (h *UserHandler) DeleteAllUsers(w http.ResponseWriter, r *http.Request) {
	if err := h.users.DeleteAllUsers(r.Context()); err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("all users deleted")
	respondWithJSON(w, http.StatusOK, "Users successfully deleted", h.logger)
}

// DeleteUser handles DELETE /users/{username} and cascades the delete
// to the user's registrations.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.users.DeleteUser(r.Context(), username); err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("user deleted", "username", username)
	respondWithJSON(w, http.StatusOK, "User successfully deleted.", h.logger)
}
