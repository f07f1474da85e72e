package usecase

import (
	"context"
	"time"

	authDomain "github.com/edulabs/classauth/internal/auth/domain"
	"github.com/edulabs/classauth/internal/course/domain"
	"github.com/edulabs/classauth/internal/metrics"
)

// courseUseCaseWithMetrics decorates CourseUseCase with metrics instrumentation.
type courseUseCaseWithMetrics struct {
	next    CourseUseCase
	metrics metrics.BusinessMetrics
}

// NewCourseUseCaseWithMetrics wraps a CourseUseCase with metrics recording.
func NewCourseUseCaseWithMetrics(useCase CourseUseCase, m metrics.BusinessMetrics) CourseUseCase {
	return &courseUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter and duration histogram for one call.
func (c *courseUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.metrics.RecordOperation(ctx, "course", operation, status)
	c.metrics.RecordDuration(ctx, "course", operation, time.Since(start), status)
}

func (c *courseUseCaseWithMetrics) GetCourse(
	ctx context.Context,
	identity authDomain.Identity,
	courseID int64,
) (*domain.Course, error) {
	start := time.Now()
	course, err := c.next.GetCourse(ctx, identity, courseID)
	c.record(ctx, "course_get", start, err)
	return course, err
}

func (c *courseUseCaseWithMetrics) CreateSection(
	ctx context.Context,
	identity authDomain.Identity,
	courseID int64,
	input domain.CreateSectionInput,
) (*domain.Section, error) {
	start := time.Now()
	section, err := c.next.CreateSection(ctx, identity, courseID, input)
	c.record(ctx, "section_create", start, err)
	return section, err
}

func (c *courseUseCaseWithMetrics) GetSection(
	ctx context.Context,
	identity authDomain.Identity,
	courseID, sectionID int64,
) (*domain.Section, error) {
	start := time.Now()
	section, err := c.next.GetSection(ctx, identity, courseID, sectionID)
	c.record(ctx, "section_get", start, err)
	return section, err
}

func (c *courseUseCaseWithMetrics) UpdateSection(
	ctx context.Context,
	identity authDomain.Identity,
	courseID, sectionID int64,
	input domain.UpdateSectionInput,
) (*domain.Section, error) {
	start := time.Now()
	section, err := c.next.UpdateSection(ctx, identity, courseID, sectionID, input)
	c.record(ctx, "section_update", start, err)
	return section, err
}

func (c *courseUseCaseWithMetrics) DeleteSection(
	ctx context.Context,
	identity authDomain.Identity,
	courseID, sectionID int64,
) error {
	start := time.Now()
	err := c.next.DeleteSection(ctx, identity, courseID, sectionID)
	c.record(ctx, "section_delete", start, err)
	return err
}

func (c *courseUseCaseWithMetrics) CreateActivity(
	ctx context.Context,
	identity authDomain.Identity,
	courseID int64,
	input domain.CreateActivityInput,
) (*domain.Activity, error) {
	start := time.Now()
	activity, err := c.next.CreateActivity(ctx, identity, courseID, input)
	c.record(ctx, "activity_create", start, err)
	return activity, err
}

func (c *courseUseCaseWithMetrics) GetActivity(
	ctx context.Context,
	identity authDomain.Identity,
	courseID, activityID int64,
) (*domain.Activity, error) {
	start := time.Now()
	activity, err := c.next.GetActivity(ctx, identity, courseID, activityID)
	c.record(ctx, "activity_get", start, err)
	return activity, err
}

func (c *courseUseCaseWithMetrics) UpdateActivity(
	ctx context.Context,
	identity authDomain.Identity,
	courseID, activityID int64,
	input domain.UpdateActivityInput,
) (*domain.Activity, error) {
	start := time.Now()
	activity, err := c.next.UpdateActivity(ctx, identity, courseID, activityID, input)
	c.record(ctx, "activity_update", start, err)
	return activity, err
}

func (c *courseUseCaseWithMetrics) DeleteActivity(
	ctx context.Context,
	identity authDomain.Identity,
	courseID, activityID int64,
) error {
	start := time.Now()
	err := c.next.DeleteActivity(ctx, identity, courseID, activityID)
	c.record(ctx, "activity_delete", start, err)
	return err
}

func (c *courseUseCaseWithMetrics) CreateCourse(ctx context.Context, code, name string) (*domain.Course, error) {
	start := time.Now()
	course, err := c.next.CreateCourse(ctx, code, name)
	c.record(ctx, "course_create", start, err)
	return course, err
}

func (c *courseUseCaseWithMetrics) Enroll(ctx context.Context, userID, courseID int64) error {
	start := time.Now()
	err := c.next.Enroll(ctx, userID, courseID)
	c.record(ctx, "enrollment_create", start, err)
	return err
}
