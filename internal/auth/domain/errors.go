package domain

import (
	"github.com/edulabs/classauth/internal/errors"
)

// Authentication and authorization errors.
var (
	// ErrCourseAccessDenied indicates valid credentials without access to the
	// requested course (not enrolled, or token scoped to a different course).
	ErrCourseAccessDenied = errors.Wrap(errors.ErrForbidden, "no access to the requested course")

	// ErrCapabilityDenied indicates an authenticated identity lacking the
	// capability required by the route.
	ErrCapabilityDenied = errors.Wrap(errors.ErrForbidden, "insufficient role for this operation")
)
