package usecase

import (
	"context"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/domain"
)

// UserRegistry defines the business operations over user records.
type UserRegistry interface {
	// ListUsers returns the public projection of every user.
	ListUsers(ctx context.Context) ([]domain.UserPublic, error)

	// CreateUser registers a new user. Fails with ErrEmailTaken when the
	// email is already registered, then with ErrUsernameTaken when the
	// username is already in use (email is checked first).
	CreateUser(ctx context.Context, newUser domain.UserCreate) error

	// GetUserByUsername returns the public projection of one user or
	// ErrUserNotFound.
	GetUserByUsername(ctx context.Context, username string) (*domain.UserPublic, error)

	// DeleteAllUsers wipes every user and every registration. Always
	// succeeds, even against empty tables.
	DeleteAllUsers(ctx context.Context) error

	// DeleteUser removes one user and cascades to its registrations.
	// Fails with ErrUserNotFound when the user is absent.
	DeleteUser(ctx context.Context, username string) error
}
