package dto

import (
	authDomain "github.com/edulabs/classauth/internal/auth/domain"
)

// TokenUser describes the authenticated user inside a token response.
type TokenUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// TokenResponse is the success payload for POST /auth/token.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresIn int64     `json:"expires_in"`
	User      TokenUser `json:"user"`
}

// NewTokenResponse builds the token response from the issued token and identity.
// expiresIn is the remaining lifetime in whole seconds.
func NewTokenResponse(token string, expiresIn int64, identity authDomain.Identity) TokenResponse {
	return TokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User: TokenUser{
			ID:       identity.UserID,
			Username: identity.Username,
			Role:     string(identity.Role),
		},
	}
}
