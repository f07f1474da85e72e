// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/edulabs/classauth/internal/auth/domain"
	"github.com/edulabs/classauth/internal/course/domain"
)

// MockCourseUseCase is a mock implementation of CourseUseCase for testing.
type MockCourseUseCase struct {
	mock.Mock
}

// GetCourse mocks the GetCourse method of CourseUseCase.
func (m *MockCourseUseCase) GetCourse(
	ctx context.Context,
	identity authDomain.Identity,
	courseID int64,
) (*domain.Course, error) {
	args := m.Called(ctx, identity, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

// CreateSection mocks the CreateSection method of CourseUseCase.
func (m *MockCourseUseCase) CreateSection(
	ctx context.Context,
	identity authDomain.Identity,
	courseID int64,
	input domain.CreateSectionInput,
) (*domain.Section, error) {
	args := m.Called(ctx, identity, courseID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Section), args.Error(1)
}

// GetSection mocks the GetSection method of CourseUseCase.
func (m *MockCourseUseCase) GetSection(
	ctx context.Context,
	identity authDomain.Identity,
	courseID, sectionID int64,
) (*domain.Section, error) {
	args := m.Called(ctx, identity, courseID, sectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Section), args.Error(1)
}

// UpdateSection mocks the UpdateSection method of CourseUseCase.
func (m *MockCourseUseCase) UpdateSection(
	ctx context.Context,
	identity authDomain.Identity,
	courseID, sectionID int64,
	input domain.UpdateSectionInput,
) (*domain.Section, error) {
	args := m.Called(ctx, identity, courseID, sectionID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Section), args.Error(1)
}

// DeleteSection mocks the DeleteSection method of CourseUseCase.
func (m *MockCourseUseCase) DeleteSection(
	ctx context.Context,
	identity authDomain.Identity,
	courseID, sectionID int64,
) error {
	args := m.Called(ctx, identity, courseID, sectionID)
	return args.Error(0)
}

// CreateActivity mocks the CreateActivity method of CourseUseCase.
func (m *MockCourseUseCase) CreateActivity(
	ctx context.Context,
	identity authDomain.Identity,
	courseID int64,
	input domain.CreateActivityInput,
) (*domain.Activity, error) {
	args := m.Called(ctx, identity, courseID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}

// GetActivity mocks the GetActivity method of CourseUseCase.
func (m *MockCourseUseCase) GetActivity(
	ctx context.Context,
	identity authDomain.Identity,
	courseID, activityID int64,
) (*domain.Activity, error) {
	args := m.Called(ctx, identity, courseID, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}

// UpdateActivity mocks the UpdateActivity method of CourseUseCase.
func (m *MockCourseUseCase) UpdateActivity(
	ctx context.Context,
	identity authDomain.Identity,
	courseID, activityID int64,
	input domain.UpdateActivityInput,
) (*domain.Activity, error) {
	args := m.Called(ctx, identity, courseID, activityID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}

// DeleteActivity mocks the DeleteActivity method of CourseUseCase.
func (m *MockCourseUseCase) DeleteActivity(
	ctx context.Context,
	identity authDomain.Identity,
	courseID, activityID int64,
) error {
	args := m.Called(ctx, identity, courseID, activityID)
	return args.Error(0)
}

// CreateCourse mocks the CreateCourse method of CourseUseCase.
func (m *MockCourseUseCase) CreateCourse(ctx context.Context, code, name string) (*domain.Course, error) {
	args := m.Called(ctx, code, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

// Enroll mocks the Enroll method of CourseUseCase.
func (m *MockCourseUseCase) Enroll(ctx context.Context, userID, courseID int64) error {
	args := m.Called(ctx, userID, courseID)
	return args.Error(0)
}
