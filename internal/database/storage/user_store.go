package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/domain"
	"gorm.io/gorm"
)

// UserStore implements ports.UserStorage with GORM over the shared
// SQLite handle.
type UserStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewUserStore creates a new UserStore instance.
func NewUserStore(db *gorm.DB, logger *slog.Logger) *UserStore {
	return &UserStore{db: db, logger: logger}
}

// ListUsers returns every user record.
func (s *UserStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	result := s.db.WithContext(ctx).Find(&users)
	if result.Error != nil {
		return nil, fmt.Errorf("listing users: %w", result.Error)
	}
	return users, nil
}

// GetUserByUsername fetches a user by its primary key.
// Returns (nil, nil) when no user matches.
func (s *UserStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	result := s.db.WithContext(ctx).First(&user, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetching user by username: %w", result.Error)
	}
	return &user, nil
}

// GetUserByEmail fetches a user by its unique email.
// Returns (nil, nil) when no user matches.
func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	result := s.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetching user by email: %w", result.Error)
	}
	return &user, nil
}

// CreateUser persists a new user record.
func (s *UserStore) CreateUser(ctx context.Context, user *domain.User) error {
	result := s.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		return fmt.Errorf("creating user: %w", result.Error)
	}
	s.logger.Info("user created", "username", user.Username)
	return nil
}

// DeleteUser removes the user and then every registration referencing
// its username. Both deletes run inside one transaction so a dangling
// registration cannot survive the user deletion.
func (s *UserStore) DeleteUser(ctx context.Context, username string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.User{}, "username = ?", username).Error; err != nil {
			return fmt.Errorf("deleting user: %w", err)
		}
		if err := tx.Where("username = ?", username).Delete(&domain.Registration{}).Error; err != nil {
			return fmt.Errorf("deleting registrations of user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("user deleted with its registrations", "username", username)
	return nil
}

// DeleteAllUsers wipes the users table and then the registrations
// table, unconditionally. Succeeds on empty tables as well.
func (s *UserStore) DeleteAllUsers(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.User{}).Error; err != nil {
			return fmt.Errorf("deleting all users: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&domain.Registration{}).Error; err != nil {
			return fmt.Errorf("deleting all registrations: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("all users deleted with their registrations")
	return nil
}
