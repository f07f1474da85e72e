// Package service provides technical services for authentication operations.
//
// This package implements token signing/validation and password verification
// using industry-standard cryptographic practices.
package service

import (
	"time"

	authDomain "github.com/edulabs/classauth/internal/auth/domain"
)

// TokenService defines issuance and validation of signed access tokens.
//
// Both operations are pure functions of their inputs, the process-wide signing
// secret, and the clock; implementations hold no per-token state, so the same
// token validates to the same identity on every call until it expires.
type TokenService interface {
	// Issue signs a new access token for the identity. The expiry is always
	// exactly the configured TTL after the issue time.
	Issue(identity authDomain.Identity) (token string, expiresAt time.Time, err error)

	// Validate parses and verifies a compact token string: structure first,
	// then signature, then expiry (exclusive at the expiry instant). Any
	// failure returns an error matching errors.ErrInvalidToken; validation
	// never reveals which stage rejected the token.
	Validate(token string) (authDomain.Identity, error)
}

// PasswordService defines password hashing and verification for the user store.
// Implementations must use a memory-hard algorithm (e.g., Argon2id) and
// constant-time comparison.
type PasswordService interface {
	// HashPassword hashes a plain text password for storage.
	HashPassword(plainPassword string) (hashedPassword string, err error)

	// ComparePassword compares a plain text password against a stored hash.
	// Returns true on match, false otherwise (including on malformed hashes).
	ComparePassword(plainPassword string, hashedPassword string) bool
}
