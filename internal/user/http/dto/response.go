// Package dto defines response payloads for the user endpoints.
package dto

import (
	"time"

	"github.com/edulabs/classauth/internal/user/domain"
)

// UserResponse is the public view of a user account. The password hash never
// appears in any response.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse builds a UserResponse from the domain model.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}
