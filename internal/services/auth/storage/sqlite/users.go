package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fluxauth/flux/internal/services/auth/storage"
	"github.com/fluxauth/flux/internal/services/auth/user"
)

const userColumns = "id, email, first_name, last_name, locale, created_at, updated_at"

func scanUser(row *sql.Row) (user.User, error) {
	var (
		id, email, firstName, lastName string
		locale                         sql.NullString
		createdAt, updatedAt           int64
	)
	if err := row.Scan(&id, &email, &firstName, &lastName, &locale, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, storage.ErrNotFound
		}
		return user.User{}, fmt.Errorf("scan user: %w", err)
	}
	return dbUserToDomain(id, email, firstName, lastName, locale, createdAt, updatedAt), nil
}

func getUser(ctx context.Context, q querier, userID string) (user.User, error) {
	row := q.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", userID)
	return scanUser(row)
}

func insertUser(ctx context.Context, q querier, u user.User) error {
	var locale sql.NullString
	if u.Locale != nil {
		locale = sql.NullString{String: *u.Locale, Valid: true}
	}
	_, err := q.ExecContext(ctx,
		`INSERT INTO users (id, email, first_name, last_name, locale, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.FirstName, u.LastName, locale, toMillis(u.CreatedAt), toMillis(u.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUser returns the user with the given id.
func (s *Store) GetUser(ctx context.Context, userID string) (user.User, error) {
	return getUser(ctx, s.sqlDB, userID)
}

// GetUserByEmail returns the user registered under the given email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	row := s.sqlDB.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
	return scanUser(row)
}

// GetUsers returns the users matching the given ids. Missing ids are skipped;
// callers that need per-id errors should use GetUser.
func (s *Store) GetUsers(ctx context.Context, userIDs []string) ([]user.User, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(userIDs))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(userIDs))
	for i, id := range userIDs {
		args[i] = id
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var (
			id, email, firstName, lastName string
			locale                         sql.NullString
			createdAt, updatedAt           int64
		)
		if err := rows.Scan(&id, &email, &firstName, &lastName, &locale, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, dbUserToDomain(id, email, firstName, lastName, locale, createdAt, updatedAt))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}
