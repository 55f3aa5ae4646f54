package sqlite

import (
	"context"
	"fmt"

	"github.com/fluxauth/flux/internal/services/auth/storage"
	"github.com/fluxauth/flux/internal/services/auth/user"
)

// Tx wraps a write transaction. The connection is opened with
// _txlock=immediate, so the transaction acquires the SQLite write lock at
// BEGIN rather than on first write; a second completion of the same challenge
// blocks until this one commits and then sees the deleted row.
type Tx struct {
	sqlTx sqlTx
}

type sqlTx interface {
	querier
	Commit() error
	Rollback() error
}

// BeginTx opens an immediate write transaction.
func (s *Store) BeginTx(ctx context.Context) (storage.Tx, error) {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return &Tx{sqlTx: tx}, nil
}

// GetChallengeForUpdate reads a challenge under the transaction's write lock.
func (tx *Tx) GetChallengeForUpdate(ctx context.Context, challengeID string) (storage.Challenge, error) {
	return getChallenge(ctx, tx.sqlTx, challengeID)
}

// DeleteChallenge consumes a challenge within the transaction.
func (tx *Tx) DeleteChallenge(ctx context.Context, challengeID string) error {
	result, err := tx.sqlTx.ExecContext(ctx, "DELETE FROM user_challenges WHERE id = ?", challengeID)
	if err != nil {
		return fmt.Errorf("delete challenge: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete challenge rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// CreateUser inserts a user within the transaction.
func (tx *Tx) CreateUser(ctx context.Context, u user.User) error {
	return insertUser(ctx, tx.sqlTx, u)
}

// CreateCredential inserts a credential within the transaction.
func (tx *Tx) CreateCredential(ctx context.Context, credential storage.Credential) error {
	return insertCredential(ctx, tx.sqlTx, credential)
}

// GetUser reads a user within the transaction.
func (tx *Tx) GetUser(ctx context.Context, userID string) (user.User, error) {
	return getUser(ctx, tx.sqlTx, userID)
}

// Commit finishes the transaction and releases the write lock.
func (tx *Tx) Commit() error {
	return tx.sqlTx.Commit()
}

// Rollback abandons the transaction. Safe to call after Commit.
func (tx *Tx) Rollback() error {
	return tx.sqlTx.Rollback()
}

var _ storage.Tx = (*Tx)(nil)
