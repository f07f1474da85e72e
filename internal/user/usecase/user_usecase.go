package usecase

import (
	"context"

	authDomain "github.com/edulabs/classauth/internal/auth/domain"
	authService "github.com/edulabs/classauth/internal/auth/service"
	"github.com/edulabs/classauth/internal/user/domain"

	apperrors "github.com/edulabs/classauth/internal/errors"
)

// userUseCase implements the UserUseCase interface.
type userUseCase struct {
	userRepo        UserRepository
	passwordService authService.PasswordService
}

// Me returns the account behind the authenticated identity.
func (u *userUseCase) Me(ctx context.Context, identity authDomain.Identity) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, identity.UserID)
}

// Create provisions a new account with a hashed password.
func (u *userUseCase) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if _, err := authDomain.ParseRole(input.Role); err != nil {
		return nil, err
	}

	hash, err := u.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	user := &domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         input.Role,
		IsActive:     input.IsActive,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// NewUserUseCase creates a new user use case instance with the provided dependencies.
func NewUserUseCase(userRepo UserRepository, passwordService authService.PasswordService) UserUseCase {
	return &userUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}
