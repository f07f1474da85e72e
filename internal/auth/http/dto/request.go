// Package dto defines request and response payloads for the auth endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/edulabs/classauth/internal/validation"
)

// LoginRequest is the payload for POST /auth/token.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	CourseID *int64 `json:"course_id,omitempty"`
}

// Validate checks the login request fields.
//
// Only presence and basic shape are checked here; whether the credentials are
// correct is the use case's job, and that failure is a 401, never a 422.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, customValidation.NotBlank, customValidation.NoWhitespace, validation.Length(1, 255)),
		validation.Field(&r.Password, validation.Required, customValidation.NotBlank),
		validation.Field(&r.CourseID, customValidation.PositiveID{}),
	)
}
