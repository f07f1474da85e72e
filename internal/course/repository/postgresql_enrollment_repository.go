package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/edulabs/classauth/internal/course/domain"
	"github.com/edulabs/classauth/internal/database"
)

// PostgreSQLEnrollmentRepository handles enrollment persistence for PostgreSQL.
type PostgreSQLEnrollmentRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// NewPostgreSQLEnrollmentRepository creates a new PostgreSQLEnrollmentRepository
func NewPostgreSQLEnrollmentRepository(db *sql.DB, queryTimeout time.Duration) *PostgreSQLEnrollmentRepository {
	return &PostgreSQLEnrollmentRepository{
		db:           db,
		queryTimeout: queryTimeout,
	}
}

// Exists reports whether the user is enrolled in the course.
func (r *PostgreSQLEnrollmentRepository) Exists(ctx context.Context, userID, courseID int64) (bool, error) {
	var exists bool
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM enrollments WHERE user_id = $1 AND course_id = $2)`

	err := querier.QueryRowContext(ctx, query, userID, courseID).Scan(&exists)
	if err != nil {
		return false, storeError(err, "failed to check enrollment")
	}
	return exists, nil
}

// Create enrolls a user in a course. Enrolling twice is a no-op.
func (r *PostgreSQLEnrollmentRepository) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO enrollments (user_id, course_id, created_at)
			  VALUES ($1, $2, NOW()) ON CONFLICT (user_id, course_id) DO NOTHING`

	_, err := querier.ExecContext(ctx, query, enrollment.UserID, enrollment.CourseID)
	if err != nil {
		return storeError(err, "failed to create enrollment")
	}
	return nil
}
