package usecase

import (
	"context"
	"fmt"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/core/ports"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/domain"
)

// registrationLedger implements RegistrationLedger
type registrationLedger struct {
	userStorage         ports.UserStorage
	eventStorage        ports.EventStorage
	registrationStorage ports.RegistrationStorage
}

// NewRegistrationLedger creates a new RegistrationLedger. It needs all
// three storages because registering validates against the user and
// event registries before touching the join table.
func NewRegistrationLedger(
	userStorage ports.UserStorage,
	eventStorage ports.EventStorage,
	registrationStorage ports.RegistrationStorage,
) RegistrationLedger {
	return &registrationLedger{
		userStorage:         userStorage,
		eventStorage:        eventStorage,
		registrationStorage: registrationStorage,
	}
}

func (uc *registrationLedger) ListRegistrations(ctx context.Context) ([]domain.Registration, error) {
	regs, err := uc.registrationStorage.ListRegistrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: listing registrations: %w", err)
	}
	return regs, nil
}

func (uc *registrationLedger) ListEventsForUser(ctx context.Context, username string) ([]domain.EventPublic, error) {
	events, err := uc.registrationStorage.ListEventsForUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("usecase: listing events for user: %w", err)
	}

	public := make([]domain.EventPublic, 0, len(events))
	for _, e := range events {
		public = append(public, e.Public())
	}
	return public, nil
}

// RegisterUser runs the four checks in their fixed order before the
// insert. The order is observable through the returned error and must
// not change: user existence, identity match, event existence,
// duplicate registration.
func (uc *registrationLedger) RegisterUser(ctx context.Context, eventID int64, identity domain.RegistrationCreate) error {
	// 1. The submitted username must reference an existing user.
	user, err := uc.userStorage.GetUserByUsername(ctx, identity.Username)
	if err != nil {
		return fmt.Errorf("usecase: fetching user for registration: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	// 2. The submitted name and email must match the stored record, so
	// a caller cannot assert an identity it does not hold.
	if identity.Name != user.Name || identity.Email != user.Email {
		return domain.ErrIdentityMismatch
	}

	// 3. The event must exist.
	event, err := uc.eventStorage.GetEventByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("usecase: fetching event for registration: %w", err)
	}
	if event == nil {
		return domain.ErrEventNotFound
	}

	// 4. At most one registration per (user, event) pair.
	existing, err := uc.registrationStorage.GetRegistration(ctx, identity.Username, eventID)
	if err != nil {
		return fmt.Errorf("usecase: checking for duplicate registration: %w", err)
	}
	if existing != nil {
		return domain.ErrAlreadyRegistered
	}

	reg := domain.Registration{Username: identity.Username, EventID: eventID}
	if err := uc.registrationStorage.CreateRegistration(ctx, &reg); err != nil {
		return fmt.Errorf("usecase: creating registration: %w", err)
	}
	return nil
}

func (uc *registrationLedger) CancelRegistration(ctx context.Context, username string, eventID int64) error {
	user, err := uc.userStorage.GetUserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("usecase: fetching user for cancellation: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	event, err := uc.eventStorage.GetEventByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("usecase: fetching event for cancellation: %w", err)
	}
	if event == nil {
		return domain.ErrEventNotFound
	}

	reg, err := uc.registrationStorage.GetRegistration(ctx, username, eventID)
	if err != nil {
		return fmt.Errorf("usecase: fetching registration for cancellation: %w", err)
	}
	if reg == nil {
		return domain.ErrRegistrationNotFound
	}

	if err := uc.registrationStorage.DeleteRegistration(ctx, username, eventID); err != nil {
		return fmt.Errorf("usecase: deleting registration: %w", err)
	}
	return nil
}
