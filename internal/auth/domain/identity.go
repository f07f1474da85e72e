package domain

import "slices"

// Identity is the stable, validated identity of an authenticated user.
//
// It is created once at login (or reconstructed from a validated token) and
// passed explicitly through handlers; nothing reads it from ambient state.
// The capability set is resolved from the role at construction time and never
// re-derived per check.
type Identity struct {
	UserID       int64
	Username     string
	Role         Role
	CourseID     *int64 // non-nil when the session is scoped to one course
	capabilities []Capability
}

// NewIdentity builds an Identity with its capability set resolved from role.
func NewIdentity(userID int64, username string, role Role, courseID *int64) Identity {
	return Identity{
		UserID:       userID,
		Username:     username,
		Role:         role,
		CourseID:     courseID,
		capabilities: role.Capabilities(),
	}
}

// Can reports whether the identity holds the given capability.
func (i Identity) Can(capability Capability) bool {
	return slices.Contains(i.capabilities, capability)
}

// AllowsCourse reports whether the identity may act on the given course.
// An unscoped identity may act on any course it is otherwise authorized for;
// a course-scoped identity is rejected outright on any other course.
func (i Identity) AllowsCourse(courseID int64) bool {
	if i.CourseID == nil {
		return true
	}
	return *i.CourseID == courseID
}

// IsAdmin reports whether the identity bypasses enrollment checks.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
