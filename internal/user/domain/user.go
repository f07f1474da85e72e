// Package domain defines the user model backing credential verification.
package domain

import (
	"time"

	"github.com/edulabs/classauth/internal/errors"
)

// User errors.
var (
	// ErrUserNotFound indicates no user exists for the given id or username.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates the username is already taken.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrInvalidInput, "username already taken")
)

// User is an account in the platform's user store. The password is stored as
// an Argon2id hash; the plain password never leaves the login request.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
