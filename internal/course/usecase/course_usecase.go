package usecase

import (
	"context"

	authDomain "github.com/edulabs/classauth/internal/auth/domain"
	"github.com/edulabs/classauth/internal/course/domain"
	"github.com/edulabs/classauth/internal/database"
)

// courseUseCase implements the CourseUseCase interface for course content access.
type courseUseCase struct {
	txManager      database.TxManager
	courseRepo     CourseRepository
	enrollmentRepo EnrollmentRepository
}

// authorize enforces course access for the identity. Token scope is checked
// first, then enrollment for non-admins. Both failures surface as the same
// access-denied error so callers cannot probe which gate rejected them.
func (c *courseUseCase) authorize(
	ctx context.Context,
	identity authDomain.Identity,
	courseID int64,
) error {
	if !identity.AllowsCourse(courseID) {
		return authDomain.ErrCourseAccessDenied
	}
	if identity.IsAdmin() {
		return nil
	}
	enrolled, err := c.enrollmentRepo.Exists(ctx, identity.UserID, courseID)
	if err != nil {
		return err
	}
	if !enrolled {
		return authDomain.ErrCourseAccessDenied
	}
	return nil
}

// GetCourse retrieves a course the identity is allowed to access.
func (c *courseUseCase) GetCourse(
	ctx context.Context,
	identity authDomain.Identity,
	courseID int64,
) (*domain.Course, error) {
	if err := c.authorize(ctx, identity, courseID); err != nil {
		return nil, err
	}
	return c.courseRepo.GetCourse(ctx, courseID)
}

// CreateSection creates a new section in a course the identity can write to.
func (c *courseUseCase) CreateSection(
	ctx context.Context,
	identity authDomain.Identity,
	courseID int64,
	input domain.CreateSectionInput,
) (*domain.Section, error) {
	if err := c.authorize(ctx, identity, courseID); err != nil {
		return nil, err
	}

	// The course must exist before content is attached to it.
	if _, err := c.courseRepo.GetCourse(ctx, courseID); err != nil {
		return nil, err
	}

	section := &domain.Section{
		CourseID: courseID,
		Title:    input.Title,
		Position: input.Position,
	}
	if err := c.courseRepo.CreateSection(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

// GetSection retrieves a section within a course the identity can access.
func (c *courseUseCase) GetSection(
	ctx context.Context,
	identity authDomain.Identity,
	courseID, sectionID int64,
) (*domain.Section, error) {
	if err := c.authorize(ctx, identity, courseID); err != nil {
		return nil, err
	}
	return c.courseRepo.GetSection(ctx, courseID, sectionID)
}

// UpdateSection updates a section within a course the identity can write to.
func (c *courseUseCase) UpdateSection(
	ctx context.Context,
	identity authDomain.Identity,
	courseID, sectionID int64,
	input domain.UpdateSectionInput,
) (*domain.Section, error) {
	if err := c.authorize(ctx, identity, courseID); err != nil {
		return nil, err
	}

	section, err := c.courseRepo.GetSection(ctx, courseID, sectionID)
	if err != nil {
		return nil, err
	}

	section.Title = input.Title
	section.Position = input.Position
	if err := c.courseRepo.UpdateSection(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

// DeleteSection removes a section within a course the identity can write to.
func (c *courseUseCase) DeleteSection(
	ctx context.Context,
	identity authDomain.Identity,
	courseID, sectionID int64,
) error {
	if err := c.authorize(ctx, identity, courseID); err != nil {
		return err
	}
	return c.courseRepo.DeleteSection(ctx, courseID, sectionID)
}

// CreateActivity creates a new activity in a course the identity can write to.
func (c *courseUseCase) CreateActivity(
	ctx context.Context,
	identity authDomain.Identity,
	courseID int64,
	input domain.CreateActivityInput,
) (*domain.Activity, error) {
	if err := c.authorize(ctx, identity, courseID); err != nil {
		return nil, err
	}

	// The target section must exist in this course.
	if _, err := c.courseRepo.GetSection(ctx, courseID, input.SectionID); err != nil {
		return nil, err
	}

	activity := &domain.Activity{
		CourseID:  courseID,
		SectionID: input.SectionID,
		Title:     input.Title,
		Kind:      input.Kind,
	}
	if err := c.courseRepo.CreateActivity(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// GetActivity retrieves an activity within a course the identity can access.
func (c *courseUseCase) GetActivity(
	ctx context.Context,
	identity authDomain.Identity,
	courseID, activityID int64,
) (*domain.Activity, error) {
	if err := c.authorize(ctx, identity, courseID); err != nil {
		return nil, err
	}
	return c.courseRepo.GetActivity(ctx, courseID, activityID)
}

// UpdateActivity updates an activity within a course the identity can write to.
func (c *courseUseCase) UpdateActivity(
	ctx context.Context,
	identity authDomain.Identity,
	courseID, activityID int64,
	input domain.UpdateActivityInput,
) (*domain.Activity, error) {
	if err := c.authorize(ctx, identity, courseID); err != nil {
		return nil, err
	}

	activity, err := c.courseRepo.GetActivity(ctx, courseID, activityID)
	if err != nil {
		return nil, err
	}

	activity.Title = input.Title
	activity.Kind = input.Kind
	if err := c.courseRepo.UpdateActivity(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// DeleteActivity removes an activity within a course the identity can write to.
func (c *courseUseCase) DeleteActivity(
	ctx context.Context,
	identity authDomain.Identity,
	courseID, activityID int64,
) error {
	if err := c.authorize(ctx, identity, courseID); err != nil {
		return err
	}
	return c.courseRepo.DeleteActivity(ctx, courseID, activityID)
}

// CreateCourse creates a new course. Administrative, identity checks bypassed.
func (c *courseUseCase) CreateCourse(ctx context.Context, code, name string) (*domain.Course, error) {
	course := &domain.Course{
		Code: code,
		Name: name,
	}
	if err := c.courseRepo.CreateCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Enroll enrolls a user in a course. Administrative, identity checks bypassed.
// The existence check and the insert run in one transaction so a concurrent
// course delete cannot leave a dangling enrollment.
func (c *courseUseCase) Enroll(ctx context.Context, userID, courseID int64) error {
	return c.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := c.courseRepo.GetCourse(ctx, courseID); err != nil {
			return err
		}
		return c.enrollmentRepo.Create(ctx, &domain.Enrollment{
			UserID:   userID,
			CourseID: courseID,
		})
	})
}

// NewCourseUseCase creates a new course use case instance with the provided dependencies.
func NewCourseUseCase(
	txManager database.TxManager,
	courseRepo CourseRepository,
	enrollmentRepo EnrollmentRepository,
) CourseUseCase {
	return &courseUseCase{
		txManager:      txManager,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}
