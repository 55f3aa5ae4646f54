// Package id generates identifiers for auth records.
package id

import (
	"fmt"

	"github.com/google/uuid"
)

// NewUserID returns a time-ordered unique user identifier (UUIDv7, canonical
// string form). Time ordering keeps primary-key inserts roughly append-only.
func NewUserID() (string, error) {
	value, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuidv7: %w", err)
	}
	return value.String(), nil
}

// UserHandle returns the raw UUID bytes of a user id, the form WebAuthn
// payloads carry as the base64url-encoded user handle.
func UserHandle(userID string) ([]byte, error) {
	parsed, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("parse user id: %w", err)
	}
	return parsed[:], nil
}
