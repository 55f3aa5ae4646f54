// Package user provides the auth user identity record.
package user

import (
	"strings"
	"time"

	apperrors "github.com/fluxauth/flux/internal/platform/errors"
)

var (
	// ErrEmptyID indicates a missing user id.
	ErrEmptyID = apperrors.New(apperrors.CodeValidation, "user id is required")
	// ErrEmptyEmail indicates a missing email address.
	ErrEmptyEmail = apperrors.New(apperrors.CodeValidation, "user email is required")
)

// User represents an authenticated identity record. Users are only ever
// created as a side effect of a completed registration.
type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Locale    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateUserInput describes the fields needed to materialize a user from a
// consumed registration challenge.
type CreateUserInput struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Locale    *string
}

// CreateUser builds a durable user record from validated input. The id comes
// from the registration challenge, never from the caller directly.
func CreateUser(input CreateUserInput, now func() time.Time) (User, error) {
	if now == nil {
		now = time.Now
	}

	input.ID = strings.TrimSpace(input.ID)
	input.Email = strings.TrimSpace(input.Email)
	if input.ID == "" {
		return User{}, ErrEmptyID
	}
	if input.Email == "" {
		return User{}, ErrEmptyEmail
	}

	createdAt := now().UTC()
	return User{
		ID:        input.ID,
		Email:     input.Email,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Locale:    input.Locale,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}, nil
}

// Name returns the user's full display name.
func (u User) Name() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Abbr returns the user's initials for avatar fallbacks.
func (u User) Abbr() string {
	var abbr strings.Builder
	for _, part := range []string{u.FirstName, u.LastName} {
		for _, r := range part {
			abbr.WriteRune(r)
			break
		}
	}
	return abbr.String()
}
