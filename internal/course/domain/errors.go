package domain

import (
	"github.com/edulabs/classauth/internal/errors"
)

// Course content errors.
var (
	// ErrCourseNotFound indicates no course exists for the given id.
	ErrCourseNotFound = errors.Wrap(errors.ErrNotFound, "course not found")

	// ErrSectionNotFound indicates no section exists for the given id within the course.
	ErrSectionNotFound = errors.Wrap(errors.ErrNotFound, "section not found")

	// ErrActivityNotFound indicates no activity exists for the given id within the course.
	ErrActivityNotFound = errors.Wrap(errors.ErrNotFound, "activity not found")

	// ErrCourseAlreadyExists indicates the course code is already taken.
	ErrCourseAlreadyExists = errors.Wrap(errors.ErrInvalidInput, "course code already taken")
)
