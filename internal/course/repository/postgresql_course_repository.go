// Package repository provides data persistence implementations for course content.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/edulabs/classauth/internal/course/domain"
	"github.com/edulabs/classauth/internal/database"

	apperrors "github.com/edulabs/classauth/internal/errors"
)

// PostgreSQLCourseRepository handles course content persistence for PostgreSQL.
type PostgreSQLCourseRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// NewPostgreSQLCourseRepository creates a new PostgreSQLCourseRepository
func NewPostgreSQLCourseRepository(db *sql.DB, queryTimeout time.Duration) *PostgreSQLCourseRepository {
	return &PostgreSQLCourseRepository{
		db:           db,
		queryTimeout: queryTimeout,
	}
}

// CreateCourse inserts a new course and fills in the generated id.
func (r *PostgreSQLCourseRepository) CreateCourse(ctx context.Context, course *domain.Course) error {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO courses (code, name, created_at, updated_at)
			  VALUES ($1, $2, NOW(), NOW()) RETURNING id`

	err := querier.QueryRowContext(ctx, query, course.Code, course.Name).Scan(&course.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCourseAlreadyExists
		}
		return storeError(err, "failed to create course")
	}
	return nil
}

// GetCourse retrieves a course by id.
func (r *PostgreSQLCourseRepository) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	var course domain.Course
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, code, name, created_at, updated_at FROM courses WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&course.ID, &course.Code, &course.Name, &course.CreatedAt, &course.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, storeError(err, "failed to get course")
	}

	return &course, nil
}

// CreateSection inserts a new section and fills in the generated id.
func (r *PostgreSQLCourseRepository) CreateSection(ctx context.Context, section *domain.Section) error {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO sections (course_id, title, position, created_at, updated_at)
			  VALUES ($1, $2, $3, NOW(), NOW()) RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		section.CourseID, section.Title, section.Position,
	).Scan(&section.ID)
	if err != nil {
		return storeError(err, "failed to create section")
	}
	return nil
}

// GetSection retrieves a section by id, scoped to its course.
func (r *PostgreSQLCourseRepository) GetSection(
	ctx context.Context,
	courseID, sectionID int64,
) (*domain.Section, error) {
	var section domain.Section
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, course_id, title, position, created_at, updated_at
			  FROM sections WHERE id = $1 AND course_id = $2`

	err := querier.QueryRowContext(ctx, query, sectionID, courseID).Scan(
		&section.ID, &section.CourseID, &section.Title, &section.Position,
		&section.CreatedAt, &section.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSectionNotFound
		}
		return nil, storeError(err, "failed to get section")
	}

	return &section, nil
}

// UpdateSection persists the mutable fields of a section.
func (r *PostgreSQLCourseRepository) UpdateSection(ctx context.Context, section *domain.Section) error {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE sections SET title = $1, position = $2, updated_at = NOW()
			  WHERE id = $3 AND course_id = $4`

	result, err := querier.ExecContext(ctx, query,
		section.Title, section.Position, section.ID, section.CourseID,
	)
	if err != nil {
		return storeError(err, "failed to update section")
	}
	return requireRowAffected(result, domain.ErrSectionNotFound)
}

// DeleteSection removes a section, scoped to its course.
func (r *PostgreSQLCourseRepository) DeleteSection(ctx context.Context, courseID, sectionID int64) error {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM sections WHERE id = $1 AND course_id = $2`

	result, err := querier.ExecContext(ctx, query, sectionID, courseID)
	if err != nil {
		return storeError(err, "failed to delete section")
	}
	return requireRowAffected(result, domain.ErrSectionNotFound)
}

// CreateActivity inserts a new activity and fills in the generated id.
func (r *PostgreSQLCourseRepository) CreateActivity(ctx context.Context, activity *domain.Activity) error {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO activities (course_id, section_id, title, kind, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW()) RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		activity.CourseID, activity.SectionID, activity.Title, activity.Kind,
	).Scan(&activity.ID)
	if err != nil {
		return storeError(err, "failed to create activity")
	}
	return nil
}

// GetActivity retrieves an activity by id, scoped to its course.
func (r *PostgreSQLCourseRepository) GetActivity(
	ctx context.Context,
	courseID, activityID int64,
) (*domain.Activity, error) {
	var activity domain.Activity
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, course_id, section_id, title, kind, created_at, updated_at
			  FROM activities WHERE id = $1 AND course_id = $2`

	err := querier.QueryRowContext(ctx, query, activityID, courseID).Scan(
		&activity.ID, &activity.CourseID, &activity.SectionID, &activity.Title,
		&activity.Kind, &activity.CreatedAt, &activity.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, storeError(err, "failed to get activity")
	}

	return &activity, nil
}

// UpdateActivity persists the mutable fields of an activity.
func (r *PostgreSQLCourseRepository) UpdateActivity(ctx context.Context, activity *domain.Activity) error {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE activities SET title = $1, kind = $2, updated_at = NOW()
			  WHERE id = $3 AND course_id = $4`

	result, err := querier.ExecContext(ctx, query,
		activity.Title, activity.Kind, activity.ID, activity.CourseID,
	)
	if err != nil {
		return storeError(err, "failed to update activity")
	}
	return requireRowAffected(result, domain.ErrActivityNotFound)
}

// DeleteActivity removes an activity, scoped to its course.
func (r *PostgreSQLCourseRepository) DeleteActivity(ctx context.Context, courseID, activityID int64) error {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM activities WHERE id = $1 AND course_id = $2`

	result, err := querier.ExecContext(ctx, query, activityID, courseID)
	if err != nil {
		return storeError(err, "failed to delete activity")
	}
	return requireRowAffected(result, domain.ErrActivityNotFound)
}

// requireRowAffected converts a zero-row write into the given not-found error.
func requireRowAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return storeError(err, "failed to read affected rows")
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

// isUniqueViolation checks if the error is a unique constraint violation
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "duplicate entry") ||
		strings.Contains(errMsg, "unique constraint")
}

// storeError wraps a query error, surfacing timeouts and cancellations as a
// retryable unavailability error.
func storeError(err error, message string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.Wrap(apperrors.ErrUnavailable, message)
	}
	return apperrors.Wrap(err, message)
}
