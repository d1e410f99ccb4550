package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the three handlers onto the HTTP route table.
func NewRouter(
	userHandler *UserHandler,
	eventHandler *EventHandler,
	registrationHandler *RegistrationHandler,
	logger *slog.Logger,
	requestTimeout time.Duration,
) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.ListUsers)
		r.Post("/", userHandler.CreateUser)
		r.Delete("/", userHandler.DeleteAllUsers)
		r.Get("/{username}", userHandler.GetUserByUsername)
		r.Delete("/{username}", userHandler.DeleteUser)
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", eventHandler.ListEvents)
		r.Post("/", eventHandler.CreateEvent)
		r.Delete("/", eventHandler.DeleteAllEvents)
		r.Get("/{id}", eventHandler.GetEventByID)
		r.Put("/{id}", eventHandler.UpdateEvent)
		r.Delete("/{id}", eventHandler.DeleteEvent)
		r.Post("/{id}/register", eventHandler.RegisterUser)
	})

	r.Route("/registrations", func(r chi.Router) {
		r.Get("/", registrationHandler.ListRegistrations)
		r.Get("/{username}", registrationHandler.ListEventsForUser)
		r.Delete("/{username}/{event_id}", registrationHandler.CancelRegistration)
	})

	return r
}
