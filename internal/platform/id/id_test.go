package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewUserIDIsUUIDv7(t *testing.T) {
	value, err := NewUserID()
	if err != nil {
		t.Fatalf("new user id: %v", err)
	}
	parsed, err := uuid.Parse(value)
	if err != nil {
		t.Fatalf("parse id: %v", err)
	}
	if parsed.Version() != 7 {
		t.Fatalf("expected version 7, got %d", parsed.Version())
	}
}

func TestNewUserIDOrdering(t *testing.T) {
	first, err := NewUserID()
	if err != nil {
		t.Fatalf("new user id: %v", err)
	}
	second, err := NewUserID()
	if err != nil {
		t.Fatalf("new user id: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct ids")
	}
}

func TestUserHandleRoundTrip(t *testing.T) {
	userID, err := NewUserID()
	if err != nil {
		t.Fatalf("new user id: %v", err)
	}
	handle, err := UserHandle(userID)
	if err != nil {
		t.Fatalf("user handle: %v", err)
	}
	if len(handle) != 16 {
		t.Fatalf("expected 16 handle bytes, got %d", len(handle))
	}
	roundTripped, err := uuid.FromBytes(handle)
	if err != nil {
		t.Fatalf("uuid from bytes: %v", err)
	}
	if roundTripped.String() != userID {
		t.Fatalf("handle round trip = %q, want %q", roundTripped.String(), userID)
	}
}

func TestUserHandleRejectsGarbage(t *testing.T) {
	if _, err := UserHandle("not-a-uuid"); err == nil {
		t.Fatal("expected error for malformed user id")
	}
}
