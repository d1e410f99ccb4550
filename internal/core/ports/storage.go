package ports

import (
	"context"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/domain"
)

// UserStorage defines the methods for interacting with the user store.
// Lookup methods return (nil, nil) when no record matches.
type UserStorage interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error

	// DeleteUser removes the user and every registration referencing it
	// inside one transaction.
	DeleteUser(ctx context.Context, username string) error

	// DeleteAllUsers wipes the users table and the registrations table
	// inside one transaction. Never fails on empty tables.
	DeleteAllUsers(ctx context.Context) error
}

// EventStorage defines the methods for interacting with the event store.
type EventStorage interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEventByID(ctx context.Context, id int64) (*domain.Event, error)

	// CreateEvent inserts the event and fills in the storage-assigned id.
	CreateEvent(ctx context.Context, event *domain.Event) error

	// UpdateEvent replaces the mutable fields of an existing event.
	// Registrations for the event are left untouched.
	UpdateEvent(ctx context.Context, event *domain.Event) error

	// DeleteEvent removes the event and every registration referencing it
	// inside one transaction.
	DeleteEvent(ctx context.Context, id int64) error

	// DeleteAllEvents wipes the events table and the registrations table
	// inside one transaction. Never fails on empty tables.
	DeleteAllEvents(ctx context.Context) error
}

// RegistrationStorage defines the methods for interacting with the
// user-to-event join store.
type RegistrationStorage interface {
	ListRegistrations(ctx context.Context) ([]domain.Registration, error)

	// ListEventsForUser returns the events the user is registered for
	// (a join, not the raw registration rows). Unknown users yield an
	// empty slice, not an error.
	ListEventsForUser(ctx context.Context, username string) ([]domain.Event, error)

	GetRegistration(ctx context.Context, username string, eventID int64) (*domain.Registration, error)
	CreateRegistration(ctx context.Context, reg *domain.Registration) error
	DeleteRegistration(ctx context.Context, username string, eventID int64) error
}
