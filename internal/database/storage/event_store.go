package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/domain"
	"gorm.io/gorm"
)

// EventStore implements ports.EventStorage with GORM over the shared
// SQLite handle.
type EventStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewEventStore creates a new EventStore instance.
func NewEventStore(db *gorm.DB, logger *slog.Logger) *EventStore {
	return &EventStore{db: db, logger: logger}
}

// ListEvents returns every event record.
func (s *EventStore) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	result := s.db.WithContext(ctx).Find(&events)
	if result.Error != nil {
		return nil, fmt.Errorf("listing events: %w", result.Error)
	}
	return events, nil
}

// GetEventByID fetches an event by its surrogate key.
// Returns (nil, nil) when no event matches.
func (s *EventStore) GetEventByID(ctx context.Context, id int64) (*domain.Event, error) {
	var event domain.Event
	result := s.db.WithContext(ctx).First(&event, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetching event by id: %w", result.Error)
	}
	return &event, nil
}

// CreateEvent persists a new event record. The storage engine assigns
// the id and GORM writes it back into the struct.
func (s *EventStore) CreateEvent(ctx context.Context, event *domain.Event) error {
	result := s.db.WithContext(ctx).Create(event)
	if result.Error != nil {
		return fmt.Errorf("creating event: %w", result.Error)
	}
	s.logger.Info("event created", "event_id", event.ID, "title", event.Title)
	return nil
}

// UpdateEvent replaces all mutable fields of an existing event in
// place. Registrations referencing the event are deliberately left
// untouched, so a future notification feature can reach the
// still-registered users.
func (s *EventStore) UpdateEvent(ctx context.Context, event *domain.Event) error {
	result := s.db.WithContext(ctx).Model(&domain.Event{ID: event.ID}).Updates(map[string]interface{}{
		"title":       event.Title,
		"description": event.Description,
		"location":    event.Location,
		"date":        event.Date,
	})
	if result.Error != nil {
		return fmt.Errorf("updating event: %w", result.Error)
	}
	s.logger.Info("event updated", "event_id", event.ID)
	return nil
}

// DeleteEvent removes the event and then every registration
// referencing its id, inside one transaction.
func (s *EventStore) DeleteEvent(ctx context.Context, id int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.Event{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting event: %w", err)
		}
		if err := tx.Where("event_id = ?", id).Delete(&domain.Registration{}).Error; err != nil {
			return fmt.Errorf("deleting registrations of event: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("event deleted with its registrations", "event_id", id)
	return nil
}

// DeleteAllEvents wipes the events table and then the registrations
// table, unconditionally. Succeeds on empty tables as well.
func (s *EventStore) DeleteAllEvents(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.Event{}).Error; err != nil {
			return fmt.Errorf("deleting all events: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&domain.Registration{}).Error; err != nil {
			return fmt.Errorf("deleting all registrations: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("all events deleted with their registrations")
	return nil
}
