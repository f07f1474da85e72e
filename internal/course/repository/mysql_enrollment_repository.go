package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/edulabs/classauth/internal/course/domain"
	"github.com/edulabs/classauth/internal/database"
)

// MySQLEnrollmentRepository handles enrollment persistence for MySQL.
type MySQLEnrollmentRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// NewMySQLEnrollmentRepository creates a new MySQLEnrollmentRepository
func NewMySQLEnrollmentRepository(db *sql.DB, queryTimeout time.Duration) *MySQLEnrollmentRepository {
	return &MySQLEnrollmentRepository{
		db:           db,
		queryTimeout: queryTimeout,
	}
}

// Exists reports whether the user is enrolled in the course.
func (r *MySQLEnrollmentRepository) Exists(ctx context.Context, userID, courseID int64) (bool, error) {
	var exists bool
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM enrollments WHERE user_id = ? AND course_id = ?)`

	err := querier.QueryRowContext(ctx, query, userID, courseID).Scan(&exists)
	if err != nil {
		return false, storeError(err, "failed to check enrollment")
	}
	return exists, nil
}

// Create enrolls a user in a course. Enrolling twice is a no-op.
func (r *MySQLEnrollmentRepository) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `INSERT IGNORE INTO enrollments (user_id, course_id, created_at)
			  VALUES (?, ?, NOW())`

	_, err := querier.ExecContext(ctx, query, enrollment.UserID, enrollment.CourseID)
	if err != nil {
		return storeError(err, "failed to create enrollment")
	}
	return nil
}
