package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulabs/classauth/internal/course/domain"

	apperrors "github.com/edulabs/classauth/internal/errors"
)

func TestMySQLCourseRepositoryGetCourse(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMySQLCourseRepository(db, time.Second)

	now := time.Now()
	mock.ExpectQuery(`SELECT id, code, name, created_at, updated_at FROM courses WHERE id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name", "created_at", "updated_at"}).
			AddRow(int64(1), "GO101", "Intro to Go", now, now))

	course, err := repo.GetCourse(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "GO101", course.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLCourseRepositoryGetCourseNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMySQLCourseRepository(db, time.Second)

	mock.ExpectQuery(`SELECT .+ FROM courses WHERE id = \?`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetCourse(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMySQLCourseRepositoryCreateCourse(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMySQLCourseRepository(db, time.Second)

	mock.ExpectExec(`INSERT INTO courses`).
		WithArgs("GO101", "Intro to Go").
		WillReturnResult(sqlmock.NewResult(5, 1))

	course := &domain.Course{Code: "GO101", Name: "Intro to Go"}
	require.NoError(t, repo.CreateCourse(context.Background(), course))
	assert.Equal(t, int64(5), course.ID)
}

func TestMySQLCourseRepositoryCreateCourseDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMySQLCourseRepository(db, time.Second)

	mock.ExpectExec(`INSERT INTO courses`).
		WithArgs("GO101", "Intro to Go").
		WillReturnError(apperrors.New("Error 1062: Duplicate entry 'GO101' for key 'code'"))

	err := repo.CreateCourse(context.Background(), &domain.Course{Code: "GO101", Name: "Intro to Go"})
	assert.ErrorIs(t, err, domain.ErrCourseAlreadyExists)
}

func TestMySQLCourseRepositoryUpdateSectionNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMySQLCourseRepository(db, time.Second)

	mock.ExpectExec(`UPDATE sections SET`).
		WithArgs("Week 1", 1, int64(9), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateSection(context.Background(), &domain.Section{
		ID:       9,
		CourseID: 1,
		Title:    "Week 1",
		Position: 1,
	})
	assert.ErrorIs(t, err, domain.ErrSectionNotFound)
}

func TestMySQLCourseRepositoryDeleteActivity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMySQLCourseRepository(db, time.Second)

	mock.ExpectExec(`DELETE FROM activities WHERE id = \? AND course_id = \?`).
		WithArgs(int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteActivity(context.Background(), 1, 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLEnrollmentRepositoryExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMySQLEnrollmentRepository(db, time.Second)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM enrollments WHERE user_id = \? AND course_id = \?\)`).
		WithArgs(int64(42), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), 42, 1)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMySQLEnrollmentRepositoryCreateIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMySQLEnrollmentRepository(db, time.Second)

	mock.ExpectExec(`INSERT IGNORE INTO enrollments`).
		WithArgs(int64(42), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Create(context.Background(), &domain.Enrollment{UserID: 42, CourseID: 1})
	require.NoError(t, err)
}
