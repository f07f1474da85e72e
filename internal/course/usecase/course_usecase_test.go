package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/edulabs/classauth/internal/auth/domain"
	"github.com/edulabs/classauth/internal/course/domain"
	"github.com/edulabs/classauth/internal/course/usecase/mocks"

	apperrors "github.com/edulabs/classauth/internal/errors"
)

func studentIdentity(courseID *int64) authDomain.Identity {
	return authDomain.NewIdentity(42, "student1", authDomain.RoleStudent, courseID)
}

func TestCourseUseCaseGetCourse(t *testing.T) {
	ctx := context.Background()

	t.Run("EnrolledStudent", func(t *testing.T) {
		courseRepo := new(mocks.MockCourseRepository)
		enrollmentRepo := new(mocks.MockEnrollmentRepository)
		uc := NewCourseUseCase(mocks.PassthroughTxManager{}, courseRepo, enrollmentRepo)

		enrollmentRepo.On("Exists", ctx, int64(42), int64(3)).Return(true, nil)
		courseRepo.On("GetCourse", ctx, int64(3)).Return(&domain.Course{ID: 3, Code: "CS101"}, nil)

		course, err := uc.GetCourse(ctx, studentIdentity(nil), 3)
		require.NoError(t, err)
		assert.Equal(t, "CS101", course.Code)
		courseRepo.AssertExpectations(t)
		enrollmentRepo.AssertExpectations(t)
	})

	t.Run("NotEnrolled", func(t *testing.T) {
		courseRepo := new(mocks.MockCourseRepository)
		enrollmentRepo := new(mocks.MockEnrollmentRepository)
		uc := NewCourseUseCase(mocks.PassthroughTxManager{}, courseRepo, enrollmentRepo)

		enrollmentRepo.On("Exists", ctx, int64(42), int64(3)).Return(false, nil)

		_, err := uc.GetCourse(ctx, studentIdentity(nil), 3)
		assert.ErrorIs(t, err, authDomain.ErrCourseAccessDenied)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		// Access is denied before existence is consulted, so an unauthorized
		// caller cannot learn whether the course exists.
		courseRepo.AssertNotCalled(t, "GetCourse", mock.Anything, mock.Anything)
	})

	t.Run("ScopedTokenOtherCourse", func(t *testing.T) {
		courseRepo := new(mocks.MockCourseRepository)
		enrollmentRepo := new(mocks.MockEnrollmentRepository)
		uc := NewCourseUseCase(mocks.PassthroughTxManager{}, courseRepo, enrollmentRepo)

		scoped := int64(7)
		_, err := uc.GetCourse(ctx, studentIdentity(&scoped), 3)
		assert.ErrorIs(t, err, authDomain.ErrCourseAccessDenied)
		// Scope rejection happens before any store access.
		enrollmentRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
		courseRepo.AssertNotCalled(t, "GetCourse", mock.Anything, mock.Anything)
	})

	t.Run("AdminSkipsEnrollment", func(t *testing.T) {
		courseRepo := new(mocks.MockCourseRepository)
		enrollmentRepo := new(mocks.MockEnrollmentRepository)
		uc := NewCourseUseCase(mocks.PassthroughTxManager{}, courseRepo, enrollmentRepo)

		courseRepo.On("GetCourse", ctx, int64(3)).Return(&domain.Course{ID: 3, Code: "CS101"}, nil)

		admin := authDomain.NewIdentity(1, "root", authDomain.RoleAdmin, nil)
		_, err := uc.GetCourse(ctx, admin, 3)
		require.NoError(t, err)
		enrollmentRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("EnrollmentStoreUnavailable", func(t *testing.T) {
		courseRepo := new(mocks.MockCourseRepository)
		enrollmentRepo := new(mocks.MockEnrollmentRepository)
		uc := NewCourseUseCase(mocks.PassthroughTxManager{}, courseRepo, enrollmentRepo)

		enrollmentRepo.On("Exists", ctx, int64(42), int64(3)).
			Return(false, apperrors.Wrap(apperrors.ErrUnavailable, "failed to check enrollment"))

		_, err := uc.GetCourse(ctx, studentIdentity(nil), 3)
		// A store failure must not be mistaken for a denial.
		assert.ErrorIs(t, err, apperrors.ErrUnavailable)
		assert.NotErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("NotFoundAfterAuthorization", func(t *testing.T) {
		courseRepo := new(mocks.MockCourseRepository)
		enrollmentRepo := new(mocks.MockEnrollmentRepository)
		uc := NewCourseUseCase(mocks.PassthroughTxManager{}, courseRepo, enrollmentRepo)

		enrollmentRepo.On("Exists", ctx, int64(42), int64(999)).Return(true, nil)
		courseRepo.On("GetCourse", ctx, int64(999)).Return(nil, domain.ErrCourseNotFound)

		_, err := uc.GetCourse(ctx, studentIdentity(nil), 999)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestCourseUseCaseCreateSection(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		courseRepo := new(mocks.MockCourseRepository)
		enrollmentRepo := new(mocks.MockEnrollmentRepository)
		uc := NewCourseUseCase(mocks.PassthroughTxManager{}, courseRepo, enrollmentRepo)

		teacher := authDomain.NewIdentity(9, "teacher1", authDomain.RoleTeacher, nil)
		enrollmentRepo.On("Exists", ctx, int64(9), int64(3)).Return(true, nil)
		courseRepo.On("GetCourse", ctx, int64(3)).Return(&domain.Course{ID: 3}, nil)
		courseRepo.On("CreateSection", ctx, mock.AnythingOfType("*domain.Section")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Section).ID = 10
			}).
			Return(nil)

		section, err := uc.CreateSection(ctx, teacher, 3, domain.CreateSectionInput{
			Title:    "Week 1",
			Position: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(10), section.ID)
		assert.Equal(t, int64(3), section.CourseID)
	})

	t.Run("CourseNotFound", func(t *testing.T) {
		courseRepo := new(mocks.MockCourseRepository)
		enrollmentRepo := new(mocks.MockEnrollmentRepository)
		uc := NewCourseUseCase(mocks.PassthroughTxManager{}, courseRepo, enrollmentRepo)

		teacher := authDomain.NewIdentity(9, "teacher1", authDomain.RoleTeacher, nil)
		enrollmentRepo.On("Exists", ctx, int64(9), int64(999)).Return(true, nil)
		courseRepo.On("GetCourse", ctx, int64(999)).Return(nil, domain.ErrCourseNotFound)

		_, err := uc.CreateSection(ctx, teacher, 999, domain.CreateSectionInput{Title: "Week 1"})
		assert.ErrorIs(t, err, domain.ErrCourseNotFound)
		courseRepo.AssertNotCalled(t, "CreateSection", mock.Anything, mock.Anything)
	})
}

func TestCourseUseCaseUpdateActivity(t *testing.T) {
	ctx := context.Background()

	courseRepo := new(mocks.MockCourseRepository)
	enrollmentRepo := new(mocks.MockEnrollmentRepository)
	uc := NewCourseUseCase(mocks.PassthroughTxManager{}, courseRepo, enrollmentRepo)

	teacher := authDomain.NewIdentity(9, "teacher1", authDomain.RoleTeacher, nil)
	existing := &domain.Activity{
		ID: 20, CourseID: 3, SectionID: 10, Title: "Quiz 1", Kind: "quiz",
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	enrollmentRepo.On("Exists", ctx, int64(9), int64(3)).Return(true, nil)
	courseRepo.On("GetActivity", ctx, int64(3), int64(20)).Return(existing, nil)
	courseRepo.On("UpdateActivity", ctx, mock.AnythingOfType("*domain.Activity")).Return(nil)

	activity, err := uc.UpdateActivity(ctx, teacher, 3, 20, domain.UpdateActivityInput{
		Title: "Quiz 1 (revised)",
		Kind:  "quiz",
	})
	require.NoError(t, err)
	assert.Equal(t, "Quiz 1 (revised)", activity.Title)
}

func TestCourseUseCaseCreateActivityMissingSection(t *testing.T) {
	ctx := context.Background()

	courseRepo := new(mocks.MockCourseRepository)
	enrollmentRepo := new(mocks.MockEnrollmentRepository)
	uc := NewCourseUseCase(mocks.PassthroughTxManager{}, courseRepo, enrollmentRepo)

	teacher := authDomain.NewIdentity(9, "teacher1", authDomain.RoleTeacher, nil)
	enrollmentRepo.On("Exists", ctx, int64(9), int64(3)).Return(true, nil)
	courseRepo.On("GetSection", ctx, int64(3), int64(999)).Return(nil, domain.ErrSectionNotFound)

	_, err := uc.CreateActivity(ctx, teacher, 3, domain.CreateActivityInput{
		SectionID: 999,
		Title:     "Quiz 1",
		Kind:      "quiz",
	})
	assert.ErrorIs(t, err, domain.ErrSectionNotFound)
}

func TestCourseUseCaseEnroll(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		courseRepo := new(mocks.MockCourseRepository)
		enrollmentRepo := new(mocks.MockEnrollmentRepository)
		uc := NewCourseUseCase(mocks.PassthroughTxManager{}, courseRepo, enrollmentRepo)

		courseRepo.On("GetCourse", ctx, int64(3)).Return(&domain.Course{ID: 3}, nil)
		enrollmentRepo.On("Create", ctx, &domain.Enrollment{UserID: 42, CourseID: 3}).Return(nil)

		require.NoError(t, uc.Enroll(ctx, 42, 3))
		enrollmentRepo.AssertExpectations(t)
	})

	t.Run("CourseNotFound", func(t *testing.T) {
		courseRepo := new(mocks.MockCourseRepository)
		enrollmentRepo := new(mocks.MockEnrollmentRepository)
		uc := NewCourseUseCase(mocks.PassthroughTxManager{}, courseRepo, enrollmentRepo)

		courseRepo.On("GetCourse", ctx, int64(999)).Return(nil, domain.ErrCourseNotFound)

		err := uc.Enroll(ctx, 42, 999)
		assert.ErrorIs(t, err, domain.ErrCourseNotFound)
	})
}
