package usecase

import (
	"context"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/domain"
)

// EventRegistry defines the business operations over event records.
type EventRegistry interface {
	// ListEvents returns the public projection of every event.
	ListEvents(ctx context.Context) ([]domain.EventPublic, error)

	// CreateEvent persists a new event. The storage engine assigns the
	// id; the returned projection carries it.
	CreateEvent(ctx context.Context, newEvent domain.EventCreate) (*domain.EventPublic, error)

	// GetEventByID returns one event or ErrEventNotFound.
	GetEventByID(ctx context.Context, id int64) (*domain.EventPublic, error)

	// UpdateEvent replaces all mutable fields of an existing event,
	// preserving the id and every registration for the event. Fails
	// with ErrEventNotFound when the event is absent.
	UpdateEvent(ctx context.Context, id int64, update domain.EventUpdate) error

	// DeleteAllEvents wipes every event and every registration. Always
	// succeeds, even against empty tables.
	DeleteAllEvents(ctx context.Context) error

	// DeleteEvent removes one event and cascades to its registrations.
	// Fails with ErrEventNotFound when the event is absent.
	DeleteEvent(ctx context.Context, id int64) error
}
