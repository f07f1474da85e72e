// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. These errors should be used by use cases
// and mapped to appropriate HTTP status codes by handlers.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials indicates a username/password pair could not be
	// verified. The same error covers unknown usernames and wrong passwords
	// to prevent user enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingToken indicates a protected request carried no authentication token.
	ErrMissingToken = errors.New("missing authentication token")

	// ErrInvalidToken indicates an authentication token that is malformed,
	// tampered with, or expired. All three cases share one error so responses
	// never reveal why a token was rejected.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrForbidden indicates the authenticated user doesn't have permission.
	ErrForbidden = errors.New("forbidden")

	// ErrUnavailable indicates a downstream store timed out or is unreachable.
	// Callers may retry; it must never be reported as an authentication failure.
	ErrUnavailable = errors.New("service unavailable")
)

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
