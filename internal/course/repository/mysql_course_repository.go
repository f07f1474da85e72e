package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/edulabs/classauth/internal/course/domain"
	"github.com/edulabs/classauth/internal/database"
)

// MySQLCourseRepository handles course content persistence for MySQL.
type MySQLCourseRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// NewMySQLCourseRepository creates a new MySQLCourseRepository
func NewMySQLCourseRepository(db *sql.DB, queryTimeout time.Duration) *MySQLCourseRepository {
	return &MySQLCourseRepository{
		db:           db,
		queryTimeout: queryTimeout,
	}
}

// CreateCourse inserts a new course and fills in the generated id.
func (r *MySQLCourseRepository) CreateCourse(ctx context.Context, course *domain.Course) error {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO courses (code, name, created_at, updated_at)
			  VALUES (?, ?, NOW(), NOW())`

	result, err := querier.ExecContext(ctx, query, course.Code, course.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCourseAlreadyExists
		}
		return storeError(err, "failed to create course")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storeError(err, "failed to read generated course id")
	}
	course.ID = id
	return nil
}

// GetCourse retrieves a course by id.
func (r *MySQLCourseRepository) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	var course domain.Course
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, code, name, created_at, updated_at FROM courses WHERE id = ?`

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
func (r *MySQLCourseRepository) CreateSection(ctx context.Context, section *domain.Section) error {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO sections (course_id, title, position, created_at, updated_at)
			  VALUES (?, ?, ?, NOW(), NOW())`

	result, err := querier.ExecContext(ctx, query,
		section.CourseID, section.Title, section.Position,
	)
	if err != nil {
		return storeError(err, "failed to create section")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storeError(err, "failed to read generated section id")
	}
	section.ID = id
	return nil
}

// GetSection retrieves a section by id, scoped to its course.
func (r *MySQLCourseRepository) GetSection(
	ctx context.Context,
	courseID, sectionID int64,
) (*domain.Section, error) {
	var section domain.Section
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, course_id, title, position, created_at, updated_at
			  FROM sections WHERE id = ? AND course_id = ?`

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
func (r *MySQLCourseRepository) UpdateSection(ctx context.Context, section *domain.Section) error {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE sections SET title = ?, position = ?, updated_at = NOW()
			  WHERE id = ? AND course_id = ?`

	result, err := querier.ExecContext(ctx, query,
		section.Title, section.Position, section.ID, section.CourseID,
	)
	if err != nil {
		return storeError(err, "failed to update section")
	}
	return requireRowAffected(result, domain.ErrSectionNotFound)
}

// DeleteSection removes a section, scoped to its course.
func (r *MySQLCourseRepository) DeleteSection(ctx context.Context, courseID, sectionID int64) error {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM sections WHERE id = ? AND course_id = ?`

	result, err := querier.ExecContext(ctx, query, sectionID, courseID)
	if err != nil {
		return storeError(err, "failed to delete section")
	}
	return requireRowAffected(result, domain.ErrSectionNotFound)
}

// CreateActivity inserts a new activity and fills in the generated id.
func (r *MySQLCourseRepository) CreateActivity(ctx context.Context, activity *domain.Activity) error {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO activities (course_id, section_id, title, kind, created_at, updated_at)
			  VALUES (?, ?, ?, ?, NOW(), NOW())`

	result, err := querier.ExecContext(ctx, query,
		activity.CourseID, activity.SectionID, activity.Title, activity.Kind,
	)
	if err != nil {
		return storeError(err, "failed to create activity")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storeError(err, "failed to read generated activity id")
	}
	activity.ID = id
	return nil
}

// GetActivity retrieves an activity by id, scoped to its course.
func (r *MySQLCourseRepository) GetActivity(
	ctx context.Context,
	courseID, activityID int64,
) (*domain.Activity, error) {
	var activity domain.Activity
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, course_id, section_id, title, kind, created_at, updated_at
			  FROM activities WHERE id = ? AND course_id = ?`

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
func (r *MySQLCourseRepository) UpdateActivity(ctx context.Context, activity *domain.Activity) error {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE activities SET title = ?, kind = ?, updated_at = NOW()
			  WHERE id = ? AND course_id = ?`

	result, err := querier.ExecContext(ctx, query,
		activity.Title, activity.Kind, activity.ID, activity.CourseID,
	)
	if err != nil {
		return storeError(err, "failed to update activity")
	}
	return requireRowAffected(result, domain.ErrActivityNotFound)
}

// DeleteActivity removes an activity, scoped to its course.
func (r *MySQLCourseRepository) DeleteActivity(ctx context.Context, courseID, activityID int64) error {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM activities WHERE id = ? AND course_id = ?`

	result, err := querier.ExecContext(ctx, query, activityID, courseID)
	if err != nil {
		return storeError(err, "failed to delete activity")
	}
	return requireRowAffected(result, domain.ErrActivityNotFound)
}
