package usecase

import (
	"context"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/domain"
)

// RegistrationLedger defines the business operations over the
// user-to-event registrations. It is the only component that has to
// coordinate across the user and event registries.
type RegistrationLedger interface {
	// ListRegistrations returns every raw registration key pair.
	ListRegistrations(ctx context.Context) ([]domain.Registration, error)

	// ListEventsForUser returns the public projection of every event
	// the user is registered for. A user with no registrations yields
	// an empty slice; no user-existence check is performed on this
	// read path.
	ListEventsForUser(ctx context.Context, username string) ([]domain.EventPublic, error)

	// RegisterUser registers a user to an event. The checks run in a
	// fixed order: the user must exist (ErrUserNotFound), the submitted
	// name and email must match the stored record (ErrIdentityMismatch),
	// the event must exist (ErrEventNotFound), and no registration for
	// the pair may exist yet (ErrAlreadyRegistered).
	RegisterUser(ctx context.Context, eventID int64, identity domain.RegistrationCreate) error

	// CancelRegistration deletes a registration after validating that
	// the user, the event and the registration itself all still exist,
	// failing with the corresponding not-found error otherwise.
	CancelRegistration(ctx context.Context, username string, eventID int64) error
}
