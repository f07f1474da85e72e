package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/edulabs/classauth/internal/database"
	"github.com/edulabs/classauth/internal/user/domain"
)

// MySQLUserRepository handles user persistence for MySQL
type MySQLUserRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// NewMySQLUserRepository creates a new MySQLUserRepository
func NewMySQLUserRepository(db *sql.DB, queryTimeout time.Duration) *MySQLUserRepository {
	return &MySQLUserRepository{
		db:           db,
		queryTimeout: queryTimeout,
	}
}

// Create inserts a new user and fills in the generated id.
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (username, password_hash, role, is_active, created_at, updated_at)
			  VALUES (?, ?, ?, ?, NOW(), NOW())`

	result, err := querier.ExecContext(ctx, query,
		user.Username, user.PasswordHash, user.Role, user.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return storeError(err, "failed to create user")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storeError(err, "failed to read generated user id")
	}
	user.ID = id
	return nil
}

// GetByID retrieves a user by ID
func (r *MySQLUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, password_hash, role, is_active, created_at, updated_at
			  FROM users WHERE id = ?`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storeError(err, "failed to get user by id")
	}

	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *MySQLUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	ctx, cancel := database.WithQueryTimeout(ctx, r.queryTimeout)
	defer cancel()
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, password_hash, role, is_active, created_at, updated_at
			  FROM users WHERE username = ?`

	err := querier.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storeError(err, "failed to get user by username")
	}

	return &user, nil
}
