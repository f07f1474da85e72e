package usecase

import (
	"context"
	"errors"

	authDomain "github.com/edulabs/classauth/internal/auth/domain"
	authService "github.com/edulabs/classauth/internal/auth/service"

	apperrors "github.com/edulabs/classauth/internal/errors"
)

// loginUseCase implements the LoginUseCase interface.
type loginUseCase struct {
	userRepo        UserRepository
	enrollmentRepo  EnrollmentRepository
	tokenService    authService.TokenService
	passwordService authService.PasswordService
}

// Login verifies the credentials and issues a signed access token.
func (l *loginUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	user, err := l.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		// An unknown username reads exactly like a wrong password. Store
		// failures keep their own classification so an outage is never
		// reported as a credential problem.
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !l.passwordService.ComparePassword(input.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	role, err := authDomain.ParseRole(user.Role)
	if err != nil {
		// A bad stored role is a data problem, not a client one.
		return nil, apperrors.New("user record has an unrecognized role")
	}

	identity := authDomain.NewIdentity(user.ID, user.Username, role, input.CourseID)

	// A course-scoped token is only issued to users who can actually use it.
	if input.CourseID != nil && !identity.IsAdmin() {
		enrolled, err := l.enrollmentRepo.Exists(ctx, user.ID, *input.CourseID)
		if err != nil {
			return nil, err
		}
		if !enrolled {
			return nil, authDomain.ErrCourseAccessDenied
		}
	}

	token, expiresAt, err := l.tokenService.Issue(identity)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to issue access token")
	}

	return &LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		Identity:  identity,
	}, nil
}

// NewLoginUseCase creates a new login use case instance with the provided dependencies.
func NewLoginUseCase(
	userRepo UserRepository,
	enrollmentRepo EnrollmentRepository,
	tokenService authService.TokenService,
	passwordService authService.PasswordService,
) LoginUseCase {
	return &loginUseCase{
		userRepo:        userRepo,
		enrollmentRepo:  enrollmentRepo,
		tokenService:    tokenService,
		passwordService: passwordService,
	}
}
