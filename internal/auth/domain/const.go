// Package domain defines authentication and authorization domain models.
//
// Access control is role-based: each user carries one role, and the role
// resolves to a closed set of capabilities at identity construction time.
// Handlers check capabilities, never raw role strings.
package domain

import (
	apperrors "github.com/edulabs/classauth/internal/errors"
)

// Role identifies the privilege tier of a user within the platform.
type Role string

const (
	// RoleStudent can read course content it is enrolled in and its own profile.
	RoleStudent Role = "student"

	// RoleTeacher can additionally create, update, and delete course content.
	RoleTeacher Role = "teacher"

	// RoleAdmin has teacher capabilities on every course without enrollment.
	RoleAdmin Role = "admin"
)

// Capability defines the types of operations that can be performed on resources.
type Capability string

const (
	// ReadCapability allows reading resource data.
	ReadCapability Capability = "read"

	// WriteCapability allows creating or updating resource data.
	WriteCapability Capability = "write"

	// DeleteCapability allows removing resource data.
	DeleteCapability Capability = "delete"
)

// ParseRole converts a stored role string into a Role, rejecting anything
// outside the closed set.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleTeacher:
		return RoleTeacher, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "unknown role "+value)
	}
}

// Capabilities resolves the closed capability set for the role. The mapping is
// exhaustive over the Role constants; unknown roles get no capabilities.
func (r Role) Capabilities() []Capability {
	switch r {
	case RoleStudent:
		return []Capability{ReadCapability}
	case RoleTeacher, RoleAdmin:
		return []Capability{ReadCapability, WriteCapability, DeleteCapability}
	default:
		return nil
	}
}
