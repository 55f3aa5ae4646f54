package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/fluxauth/flux/internal/platform/storage/sqlitemigrate"
	"github.com/fluxauth/flux/internal/services/auth/storage"
	"github.com/fluxauth/flux/internal/services/auth/storage/sqlite/migrations"
	"github.com/fluxauth/flux/internal/services/auth/user"
)

// toMillis normalizes timestamps into millisecond precision for storage.
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis restores millisecond precision and keeps UTC normalization.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Store implements auth persistence over SQLite.
//
// A single SQLite file backs users, credentials, and challenges so the
// completion flows can commit their multi-row writes in one transaction.
type Store struct {
	sqlDB *sql.DB
}

// querier is the shared read/write surface of *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB returns the raw database handle for tests and tooling.
func (s *Store) DB() *sql.DB {
	if s == nil {
		return nil
	}
	return s.sqlDB
}

// Open opens the auth SQLite store and applies bundled migrations.
//
// Transactions are opened BEGIN IMMEDIATE (_txlock=immediate) so a Tx holds
// the database write lock from the start; the challenge read inside a
// completion transaction is therefore an exclusive-lock read.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_txlock=immediate&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}

	if err := store.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// Close releases the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// runMigrations applies embedded DDL for known schema versions.
func (s *Store) runMigrations() error {
	return sqlitemigrate.ApplyMigrations(s.sqlDB, migrations.FS)
}

var _ storage.UserStore = (*Store)(nil)
var _ storage.CredentialStore = (*Store)(nil)
var _ storage.ChallengeStore = (*Store)(nil)
var _ storage.TxStore = (*Store)(nil)

func dbUserToDomain(id, email, firstName, lastName string, locale sql.NullString, createdAt, updatedAt int64) user.User {
	var parsedLocale *string
	if locale.Valid {
		value := locale.String
		parsedLocale = &value
	}
	return user.User{
		ID:        id,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Locale:    parsedLocale,
		CreatedAt: fromMillis(createdAt),
		UpdatedAt: fromMillis(updatedAt),
	}
}
