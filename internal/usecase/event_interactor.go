package usecase

import (
	"context"
	"fmt"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/core/ports"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/domain"
)

// eventRegistry implements EventRegistry
type eventRegistry struct {
	eventStorage ports.EventStorage
}

// NewEventRegistry creates a new EventRegistry on top of an
// EventStorage implementation.
func NewEventRegistry(eventStorage ports.EventStorage) EventRegistry {
	return &eventRegistry{eventStorage: eventStorage}
}

func (uc *eventRegistry) ListEvents(ctx context.Context) ([]domain.EventPublic, error) {
	events, err := uc.eventStorage.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: listing events: %w", err)
	}

	public := make([]domain.EventPublic, 0, len(events))
	for _, e := range events {
		public = append(public, e.Public())
	}
	return public, nil
}

func (uc *eventRegistry) CreateEvent(ctx context.Context, newEvent domain.EventCreate) (*domain.EventPublic, error) {
	event := newEvent.Record()
	if err := uc.eventStorage.CreateEvent(ctx, &event); err != nil {
		return nil, fmt.Errorf("usecase: creating event: %w", err)
	}

	public := event.Public()
	return &public, nil
}

func (uc *eventRegistry) GetEventByID(ctx context.Context, id int64) (*domain.EventPublic, error) {
	event, err := uc.eventStorage.GetEventByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: fetching event: %w", err)
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}

	public := event.Public()
	return &public, nil
}

// UpdateEvent replaces the mutable fields of the event. Registrations
// for the event are kept as they are: a rescheduled event stays booked,
// so the still-registered users can be notified later instead of being
// silently dropped.
func (uc *eventRegistry) UpdateEvent(ctx context.Context, id int64, update domain.EventUpdate) error {
	event, err := uc.eventStorage.GetEventByID(ctx, id)
	if err != nil {
		return fmt.Errorf("usecase: fetching event before update: %w", err)
	}
	if event == nil {
		return domain.ErrEventNotFound
	}

	event.Apply(update)
	if err := uc.eventStorage.UpdateEvent(ctx, event); err != nil {
		return fmt.Errorf("usecase: updating event: %w", err)
	}
	return nil
}

func (uc *eventRegistry) DeleteAllEvents(ctx context.Context) error {
	if err := uc.eventStorage.DeleteAllEvents(ctx); err != nil {
		return fmt.Errorf("usecase: deleting all events: %w", err)
	}
	return nil
}

func (uc *eventRegistry) DeleteEvent(ctx context.Context, id int64) error {
	event, err := uc.eventStorage.GetEventByID(ctx, id)
	if err != nil {
		return fmt.Errorf("usecase: fetching event before delete: %w", err)
	}
	if event == nil {
		return domain.ErrEventNotFound
	}

	if err := uc.eventStorage.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("usecase: deleting event: %w", err)
	}
	return nil
}
