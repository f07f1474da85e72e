// Package usecase implements the business logic for authentication.
// The login use case verifies credentials against the user store and issues
// signed access tokens, optionally scoped to a single course.
package usecase

import (
	"context"
	"time"

	authDomain "github.com/edulabs/classauth/internal/auth/domain"
	userDomain "github.com/edulabs/classauth/internal/user/domain"
)

// UserRepository defines the user lookups needed for credential verification.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*userDomain.User, error)
}

// EnrollmentRepository defines the enrollment lookup needed for course-scoped logins.
type EnrollmentRepository interface {
	Exists(ctx context.Context, userID, courseID int64) (bool, error)
}

// LoginInput contains the parameters for a login attempt.
type LoginInput struct {
	Username string
	Password string
	CourseID *int64 // non-nil requests a token scoped to this course
}

// LoginOutput contains the issued token and the identity it represents.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	Identity  authDomain.Identity
}

// LoginUseCase defines the interface for the credential verification and
// token issuance flow.
//
// Unknown username, wrong password, and deactivated account all fail with the
// same credentials error so login cannot be used to enumerate accounts.
type LoginUseCase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
