package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fluxauth/flux/internal/services/auth/storage"
)

const credentialColumns = "id, user_id, public_key, public_key_algorithm, created_at, updated_at"

func scanCredential(row *sql.Row) (storage.Credential, error) {
	var (
		id, userID           string
		publicKey            []byte
		algorithm            int64
		createdAt, updatedAt int64
	)
	if err := row.Scan(&id, &userID, &publicKey, &algorithm, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Credential{}, storage.ErrNotFound
		}
		return storage.Credential{}, fmt.Errorf("scan credential: %w", err)
	}
	return storage.Credential{
		ID:                 id,
		UserID:             userID,
		PublicKey:          publicKey,
		PublicKeyAlgorithm: algorithm,
		CreatedAt:          fromMillis(createdAt),
		UpdatedAt:          fromMillis(updatedAt),
	}, nil
}

func insertCredential(ctx context.Context, q querier, credential storage.Credential) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO user_credentials (id, user_id, public_key, public_key_algorithm, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		credential.ID, credential.UserID, credential.PublicKey, credential.PublicKeyAlgorithm,
		toMillis(credential.CreatedAt), toMillis(credential.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}

// GetCredential returns the credential with the given id.
func (s *Store) GetCredential(ctx context.Context, credentialID string) (storage.Credential, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT "+credentialColumns+" FROM user_credentials WHERE id = ?", credentialID)
	return scanCredential(row)
}

// ListCredentialsByUser returns every credential registered to the user.
func (s *Store) ListCredentialsByUser(ctx context.Context, userID string) ([]storage.Credential, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT "+credentialColumns+" FROM user_credentials WHERE user_id = ? ORDER BY created_at", userID)
	if err != nil {
		return nil, fmt.Errorf("query credentials: %w", err)
	}
	defer rows.Close()

	var credentials []storage.Credential
	for rows.Next() {
		var (
			id, owner            string
			publicKey            []byte
			algorithm            int64
			createdAt, updatedAt int64
		)
		if err := rows.Scan(&id, &owner, &publicKey, &algorithm, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan credential: %w", err)
		}
		credentials = append(credentials, storage.Credential{
			ID:                 id,
			UserID:             owner,
			PublicKey:          publicKey,
			PublicKeyAlgorithm: algorithm,
			CreatedAt:          fromMillis(createdAt),
			UpdatedAt:          fromMillis(updatedAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credentials: %w", err)
	}
	return credentials, nil
}
