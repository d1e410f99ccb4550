package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/domain"
	"gorm.io/gorm"
)

// RegistrationStore implements ports.RegistrationStorage with GORM
// over the shared SQLite handle.
type RegistrationStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewRegistrationStore creates a new RegistrationStore instance.
func NewRegistrationStore(db *gorm.DB, logger *slog.Logger) *RegistrationStore {
	return &RegistrationStore{db: db, logger: logger}
}

// ListRegistrations returns every raw registration key pair.
func (s *RegistrationStore) ListRegistrations(ctx context.Context) ([]domain.Registration, error) {
	var regs []domain.Registration
	result := s.db.WithContext(ctx).Find(&regs)
	if result.Error != nil {
		return nil, fmt.Errorf("listing registrations: %w", result.Error)
	}
	return regs, nil
}

// ListEventsForUser returns the events the user is registered for,
// joining registrations with events. A user with no registrations
// yields an empty slice.
func (s *RegistrationStore) ListEventsForUser(ctx context.Context, username string) ([]domain.Event, error) {
	var events []domain.Event
	result := s.db.WithContext(ctx).
		Joins("JOIN registrations ON registrations.event_id = events.id").
		Where("registrations.username = ?", username).
		Find(&events)
	if result.Error != nil {
		return nil, fmt.Errorf("listing events for user: %w", result.Error)
	}
	return events, nil
}

// GetRegistration fetches a registration by its composite key.
// Returns (nil, nil) when no registration matches.
func (s *RegistrationStore) GetRegistration(ctx context.Context, username string, eventID int64) (*domain.Registration, error) {
	var reg domain.Registration
	result := s.db.WithContext(ctx).
		First(&reg, "username = ? AND event_id = ?", username, eventID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetching registration: %w", result.Error)
	}
	return &reg, nil
}

// CreateRegistration persists a new registration record.
func (s *RegistrationStore) CreateRegistration(ctx context.Context, reg *domain.Registration) error {
	result := s.db.WithContext(ctx).Create(reg)
	if result.Error != nil {
		return fmt.Errorf("creating registration: %w", result.Error)
	}
	s.logger.Info("registration created", "username", reg.Username, "event_id", reg.EventID)
	return nil
}

// DeleteRegistration removes a registration by its composite key.
func (s *RegistrationStore) DeleteRegistration(ctx context.Context, username string, eventID int64) error {
	result := s.db.WithContext(ctx).
		Where("username = ? AND event_id = ?", username, eventID).
		Delete(&domain.Registration{})
	if result.Error != nil {
		return fmt.Errorf("deleting registration: %w", result.Error)
	}
	s.logger.Info("registration deleted", "username", username, "event_id", eventID)
	return nil
}
