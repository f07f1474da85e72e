package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/edulabs/classauth/internal/auth/domain"
	"github.com/edulabs/classauth/internal/user/domain"
	"github.com/edulabs/classauth/internal/user/usecase/mocks"

	apperrors "github.com/edulabs/classauth/internal/errors"
)

func TestUserUseCaseMe(t *testing.T) {
	ctx := context.Background()
	identity := authDomain.NewIdentity(42, "student1", authDomain.RoleStudent, nil)

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		uc := NewUserUseCase(userRepo, new(mocks.MockPasswordService))

		userRepo.On("GetByID", ctx, int64(42)).
			Return(&domain.User{ID: 42, Username: "student1", Role: "student", IsActive: true}, nil)

		user, err := uc.Me(ctx, identity)
		require.NoError(t, err)
		assert.Equal(t, "student1", user.Username)
	})

	t.Run("AccountRemoved", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		uc := NewUserUseCase(userRepo, new(mocks.MockPasswordService))

		userRepo.On("GetByID", ctx, int64(42)).Return(nil, domain.ErrUserNotFound)

		_, err := uc.Me(ctx, identity)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestUserUseCaseCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		passwordService := new(mocks.MockPasswordService)
		uc := NewUserUseCase(userRepo, passwordService)

		passwordService.On("HashPassword", "plain-password").Return("argon2id$hash", nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = 7
			}).
			Return(nil)

		user, err := uc.Create(ctx, CreateUserInput{
			Username: "student1",
			Password: "plain-password",
			Role:     "student",
			IsActive: true,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "argon2id$hash", user.PasswordHash)
	})

	t.Run("UnknownRole", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		passwordService := new(mocks.MockPasswordService)
		uc := NewUserUseCase(userRepo, passwordService)

		_, err := uc.Create(ctx, CreateUserInput{
			Username: "student1",
			Password: "plain-password",
			Role:     "superuser",
			IsActive: true,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		passwordService.AssertNotCalled(t, "HashPassword", mock.Anything)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		passwordService := new(mocks.MockPasswordService)
		uc := NewUserUseCase(userRepo, passwordService)

		passwordService.On("HashPassword", "plain-password").Return("argon2id$hash", nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Return(domain.ErrUserAlreadyExists)

		_, err := uc.Create(ctx, CreateUserInput{
			Username: "student1",
			Password: "plain-password",
			Role:     "student",
			IsActive: true,
		})
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}
