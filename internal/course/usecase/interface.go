// Package usecase implements the business logic for course content access.
// Use cases combine the caller's identity with enrollment data to decide,
// per request, whether a course operation is allowed before touching content.
package usecase

import (
	"context"

	authDomain "github.com/edulabs/classauth/internal/auth/domain"
	"github.com/edulabs/classauth/internal/course/domain"
)

// CourseRepository defines the interface for course content persistence operations.
type CourseRepository interface {
	CreateCourse(ctx context.Context, course *domain.Course) error
	GetCourse(ctx context.Context, id int64) (*domain.Course, error)
	CreateSection(ctx context.Context, section *domain.Section) error
	GetSection(ctx context.Context, courseID, sectionID int64) (*domain.Section, error)
	UpdateSection(ctx context.Context, section *domain.Section) error
	DeleteSection(ctx context.Context, courseID, sectionID int64) error
	CreateActivity(ctx context.Context, activity *domain.Activity) error
	GetActivity(ctx context.Context, courseID, activityID int64) (*domain.Activity, error)
	UpdateActivity(ctx context.Context, activity *domain.Activity) error
	DeleteActivity(ctx context.Context, courseID, activityID int64) error
}

// EnrollmentRepository defines the interface for enrollment persistence operations.
type EnrollmentRepository interface {
	Exists(ctx context.Context, userID, courseID int64) (bool, error)
	Create(ctx context.Context, enrollment *domain.Enrollment) error
}

// CourseUseCase defines the interface for course content business logic.
//
// Every identity-taking method enforces course access before touching the
// store: a token scoped to another course or a missing enrollment is rejected
// without revealing whether the requested content exists.
type CourseUseCase interface {
	GetCourse(ctx context.Context, identity authDomain.Identity, courseID int64) (*domain.Course, error)
	CreateSection(
		ctx context.Context,
		identity authDomain.Identity,
		courseID int64,
		input domain.CreateSectionInput,
	) (*domain.Section, error)
	GetSection(
		ctx context.Context,
		identity authDomain.Identity,
		courseID, sectionID int64,
	) (*domain.Section, error)
	UpdateSection(
		ctx context.Context,
		identity authDomain.Identity,
		courseID, sectionID int64,
		input domain.UpdateSectionInput,
	) (*domain.Section, error)
	DeleteSection(ctx context.Context, identity authDomain.Identity, courseID, sectionID int64) error
	CreateActivity(
		ctx context.Context,
		identity authDomain.Identity,
		courseID int64,
		input domain.CreateActivityInput,
	) (*domain.Activity, error)
	GetActivity(
		ctx context.Context,
		identity authDomain.Identity,
		courseID, activityID int64,
	) (*domain.Activity, error)
	UpdateActivity(
		ctx context.Context,
		identity authDomain.Identity,
		courseID, activityID int64,
		input domain.UpdateActivityInput,
	) (*domain.Activity, error)
	DeleteActivity(ctx context.Context, identity authDomain.Identity, courseID, activityID int64) error

	// CreateCourse and Enroll are administrative operations used by the CLI
	// bootstrap commands. They bypass identity checks.
	CreateCourse(ctx context.Context, code, name string) (*domain.Course, error)
	Enroll(ctx context.Context, userID, courseID int64) error
}
