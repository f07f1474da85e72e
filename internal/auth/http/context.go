// Package http provides HTTP handlers and middleware for authentication.
package http

import (
	"context"

	authDomain "github.com/edulabs/classauth/internal/auth/domain"
)

// identityKey is a context key type for storing authenticated identities.
type identityKey struct{}

// WithIdentity stores an authenticated identity in the context.
// Called by the authentication middleware after successful token validation.
func WithIdentity(ctx context.Context, identity authDomain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity retrieves the authenticated identity from the context.
// Returns (identity, true) if present, or (zero, false) if no identity was set.
func GetIdentity(ctx context.Context) (authDomain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(authDomain.Identity)
	return identity, ok
}
