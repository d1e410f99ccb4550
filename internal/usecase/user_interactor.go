package usecase

import (
	"context"
	"fmt"

	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/core/ports"
	"github.com/En3rgyZ3d/univca-project-pweb2025/internal/domain"
)

// userRegistry implements UserRegistry
type userRegistry struct {
	userStorage ports.UserStorage
}

// NewUserRegistry creates a new UserRegistry on top of a UserStorage
// implementation.
func NewUserRegistry(userStorage ports.UserStorage) UserRegistry {
	return &userRegistry{userStorage: userStorage}
}

func (uc *userRegistry) ListUsers(ctx context.Context) ([]domain.UserPublic, error) {
	users, err := uc.userStorage.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: listing users: %w", err)
	}

	public := make([]domain.UserPublic, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	return public, nil
}

// CreateUser checks the two uniqueness rules before persisting: the
// email first, the username second. The order is part of the API
// contract: a request violating both reports the email conflict.
func (uc *userRegistry) CreateUser(ctx context.Context, newUser domain.UserCreate) error {
	byEmail, err := uc.userStorage.GetUserByEmail(ctx, newUser.Email)
	if err != nil {
		return fmt.Errorf("usecase: checking email uniqueness: %w", err)
	}
	if byEmail != nil {
		return domain.ErrEmailTaken
	}

	byUsername, err := uc.userStorage.GetUserByUsername(ctx, newUser.Username)
	if err != nil {
		return fmt.Errorf("usecase: checking username uniqueness: %w", err)
	}
	if byUsername != nil {
		return domain.ErrUsernameTaken
	}

	user := newUser.Record()
	if err := uc.userStorage.CreateUser(ctx, &user); err != nil {
		return fmt.Errorf("usecase: creating user: %w", err)
	}
	return nil
}

func (uc *userRegistry) GetUserByUsername(ctx context.Context, username string) (*domain.UserPublic, error) {
	user, err := uc.userStorage.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("usecase: fetching user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	public := user.Public()
	return &public, nil
}

func (uc *userRegistry) DeleteAllUsers(ctx context.Context) error {
	if err := uc.userStorage.DeleteAllUsers(ctx); err != nil {
		return fmt.Errorf("usecase: deleting all users: %w", err)
	}
	return nil
}

func (uc *userRegistry) DeleteUser(ctx context.Context, username string) error {
	user, err := uc.userStorage.GetUserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("usecase: fetching user before delete: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	if err := uc.userStorage.DeleteUser(ctx, username); err != nil {
		return fmt.Errorf("usecase: deleting user: %w", err)
	}
	return nil
}
