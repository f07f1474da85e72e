// Package usecase implements the business logic for user accounts.
package usecase

import (
	"context"

	authDomain "github.com/edulabs/classauth/internal/auth/domain"
	"github.com/edulabs/classauth/internal/user/domain"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// CreateUserInput contains the parameters for creating a user account.
type CreateUserInput struct {
	Username string
	Password string
	Role     string
	IsActive bool
}

// UserUseCase defines the interface for user account business logic.
type UserUseCase interface {
	// Me returns the account behind the authenticated identity. An account
	// that was removed after the token was issued surfaces as not found.
	Me(ctx context.Context, identity authDomain.Identity) (*domain.User, error)

	// Create provisions a new account with a hashed password. Used by the
	// CLI bootstrap command.
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
}
