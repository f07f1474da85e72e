// Package mocks provides mock implementations for testing course use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/edulabs/classauth/internal/course/domain"
)

// MockCourseRepository is a mock implementation of CourseRepository for testing.
type MockCourseRepository struct {
	mock.Mock
}

// CreateCourse mocks the CreateCourse method of CourseRepository.
func (m *MockCourseRepository) CreateCourse(ctx context.Context, course *domain.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

// GetCourse mocks the GetCourse method of CourseRepository.
func (m *MockCourseRepository) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

// CreateSection mocks the CreateSection method of CourseRepository.
func (m *MockCourseRepository) CreateSection(ctx context.Context, section *domain.Section) error {
	args := m.Called(ctx, section)
	return args.Error(0)
}

// GetSection mocks the GetSection method of CourseRepository.
func (m *MockCourseRepository) GetSection(
	ctx context.Context,
	courseID, sectionID int64,
) (*domain.Section, error) {
	args := m.Called(ctx, courseID, sectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Section), args.Error(1)
}

// UpdateSection mocks the UpdateSection method of CourseRepository.
func (m *MockCourseRepository) UpdateSection(ctx context.Context, section *domain.Section) error {
	args := m.Called(ctx, section)
	return args.Error(0)
}

// DeleteSection mocks the DeleteSection method of CourseRepository.
func (m *MockCourseRepository) DeleteSection(ctx context.Context, courseID, sectionID int64) error {
	args := m.Called(ctx, courseID, sectionID)
	return args.Error(0)
}

// CreateActivity mocks the CreateActivity method of CourseRepository.
func (m *MockCourseRepository) CreateActivity(ctx context.Context, activity *domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

// GetActivity mocks the GetActivity method of CourseRepository.
func (m *MockCourseRepository) GetActivity(
	ctx context.Context,
	courseID, activityID int64,
) (*domain.Activity, error) {
	args := m.Called(ctx, courseID, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}

// UpdateActivity mocks the UpdateActivity method of CourseRepository.
func (m *MockCourseRepository) UpdateActivity(ctx context.Context, activity *domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

// DeleteActivity mocks the DeleteActivity method of CourseRepository.
func (m *MockCourseRepository) DeleteActivity(ctx context.Context, courseID, activityID int64) error {
	args := m.Called(ctx, courseID, activityID)
	return args.Error(0)
}

// MockEnrollmentRepository is a mock implementation of EnrollmentRepository for testing.
type MockEnrollmentRepository struct {
	mock.Mock
}

// Exists mocks the Exists method of EnrollmentRepository.
func (m *MockEnrollmentRepository) Exists(ctx context.Context, userID, courseID int64) (bool, error) {
	args := m.Called(ctx, userID, courseID)
	return args.Bool(0), args.Error(1)
}

// Create mocks the Create method of EnrollmentRepository.
func (m *MockEnrollmentRepository) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	args := m.Called(ctx, enrollment)
	return args.Error(0)
}

// PassthroughTxManager is a TxManager stand-in that runs the callback
// directly, without opening a real transaction.
type PassthroughTxManager struct{}

// WithTx runs fn with the unmodified context.
func (PassthroughTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
