package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"summary-generator/internal/auth/domain/model"
	"summary-generator/internal/auth/domain/repository"
	"summary-generator/internal/auth/usecase"

	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// UserRepository is the SQLite-backed credential store
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a repository over an already migrated database
func NewUserRepository(db *sql.DB) (*UserRepository, error) {
	if db == nil {
		return nil, errors.New("database handle cannot be nil")
	}
	return &UserRepository{db: db}, nil
}

// GetUserByUsername returns usecase.ErrUserNotFound when no row matches
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	if username == "" {
		return nil, usecase.ErrUserNotFound
	}

	var user model.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, email, hashed_password, is_active, created_at
		FROM users WHERE username = ?
	`, username).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.IsActive, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, usecase.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user[%s]: %w", username, err)
	}
	return &user, nil
}

// CreateUser inserts user and sets its generated ID. Duplicate usernames or emails
// return usecase.ErrUserExists.
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}
	if strings.TrimSpace(user.Username) == "" {
		return errors.New("username cannot be empty")
	}
	if user.PasswordHash == "" {
		return errors.New("password hash cannot be empty")
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (username, email, hashed_password, is_active, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, user.Username, user.Email, user.PasswordHash, user.IsActive, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrUserExists
		}
		return fmt.Errorf("failed to create user[%s]: %w", user.Username, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	user.ID = id
	return nil
}

// CountUsers returns the number of stored users
func (r *UserRepository) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlitedriver.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

var _ repository.UserRepository = (*UserRepository)(nil)
