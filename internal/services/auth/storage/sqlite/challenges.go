package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fluxauth/flux/internal/services/auth/storage"
)

func getChallenge(ctx context.Context, q querier, challengeID string) (storage.Challenge, error) {
	row := q.QueryRowContext(ctx,
		"SELECT id, user_id, user_name, created_at FROM user_challenges WHERE id = ?", challengeID)

	var (
		id, userID, userName string
		createdAt            int64
	)
	if err := row.Scan(&id, &userID, &userName, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Challenge{}, storage.ErrNotFound
		}
		return storage.Challenge{}, fmt.Errorf("scan challenge: %w", err)
	}
	return storage.Challenge{
		ID:        id,
		UserID:    userID,
		UserName:  userName,
		CreatedAt: fromMillis(createdAt),
	}, nil
}

// CreateChallenge persists a freshly issued challenge.
func (s *Store) CreateChallenge(ctx context.Context, challenge storage.Challenge) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO user_challenges (id, user_id, user_name, created_at)
		 VALUES (?, ?, ?, ?)`,
		challenge.ID, challenge.UserID, challenge.UserName, toMillis(challenge.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert challenge: %w", err)
	}
	return nil
}
