package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fluxauth/flux/internal/services/auth/storage"
	"github.com/fluxauth/flux/internal/services/auth/user"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "auth.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return store
}

func testUser(id, email string) user.User {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	return user.User{
		ID:        id,
		Email:     email,
		FirstName: "Ada",
		LastName:  "Lovelace",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func createUserDirect(t *testing.T, store *Store, u user.User) {
	t.Helper()

	ctx := context.Background()
	tx, err := store.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx() error = %v", err)
	}
	if err := tx.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
}

func TestOpenMissingPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("Open(\"\") expected error")
	}
}

func TestOpenReapplyMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	if err := reopened.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func TestUserRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	locale := "pt-BR"
	want := testUser("user-1", "ada@example.com")
	want.Locale = &locale
	createUserDirect(t, store, want)

	got, err := store.GetUser(ctx, want.ID)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if got.Email != want.Email || got.FirstName != want.FirstName || got.LastName != want.LastName {
		t.Errorf("GetUser() = %+v, want %+v", got, want)
	}
	if got.Locale == nil || *got.Locale != locale {
		t.Errorf("GetUser() locale = %v, want %q", got.Locale, locale)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("GetUser() created at = %v, want %v", got.CreatedAt, want.CreatedAt)
	}

	byEmail, err := store.GetUserByEmail(ctx, want.Email)
	if err != nil {
		t.Fatalf("GetUserByEmail() error = %v", err)
	}
	if byEmail.ID != want.ID {
		t.Errorf("GetUserByEmail() id = %q, want %q", byEmail.ID, want.ID)
	}
}

func TestUserNilLocale(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	want := testUser("user-2", "grace@example.com")
	createUserDirect(t, store, want)

	got, err := store.GetUser(ctx, want.ID)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if got.Locale != nil {
		t.Errorf("GetUser() locale = %v, want nil", got.Locale)
	}
}

func TestUserNotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.GetUser(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetUser() error = %v, want %v", err, storage.ErrNotFound)
	}
	if _, err := store.GetUserByEmail(ctx, "missing@example.com"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetUserByEmail() error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestGetUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	createUserDirect(t, store, testUser("user-a", "a@example.com"))
	createUserDirect(t, store, testUser("user-b", "b@example.com"))

	users, err := store.GetUsers(ctx, []string{"user-a", "user-b", "missing"})
	if err != nil {
		t.Fatalf("GetUsers() error = %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("GetUsers() returned %d users, want 2", len(users))
	}

	empty, err := store.GetUsers(ctx, nil)
	if err != nil {
		t.Fatalf("GetUsers(nil) error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("GetUsers(nil) returned %d users, want 0", len(empty))
	}
}

func TestCredentialRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	owner := testUser("user-3", "cred@example.com")
	createUserDirect(t, store, owner)

	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	want := storage.Credential{
		ID:                 "credential-1",
		UserID:             owner.ID,
		PublicKey:          []byte{0x30, 0x59, 0x01, 0x02},
		PublicKeyAlgorithm: -7,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	tx, err := store.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx() error = %v", err)
	}
	if err := tx.CreateCredential(ctx, want); err != nil {
		t.Fatalf("CreateCredential() error = %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	got, err := store.GetCredential(ctx, want.ID)
	if err != nil {
		t.Fatalf("GetCredential() error = %v", err)
	}
	if got.UserID != want.UserID || got.PublicKeyAlgorithm != want.PublicKeyAlgorithm {
		t.Errorf("GetCredential() = %+v, want %+v", got, want)
	}
	if string(got.PublicKey) != string(want.PublicKey) {
		t.Errorf("GetCredential() public key = %x, want %x", got.PublicKey, want.PublicKey)
	}

	list, err := store.ListCredentialsByUser(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListCredentialsByUser() error = %v", err)
	}
	if len(list) != 1 || list[0].ID != want.ID {
		t.Errorf("ListCredentialsByUser() = %+v, want one credential %q", list, want.ID)
	}

	if _, err := store.GetCredential(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetCredential() error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestChallengeConsumeOnce(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	challenge := storage.Challenge{
		ID:        "challenge-1",
		UserID:    "user-4",
		UserName:  "once@example.com",
		CreatedAt: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC),
	}
	if err := store.CreateChallenge(ctx, challenge); err != nil {
		t.Fatalf("CreateChallenge() error = %v", err)
	}

	tx, err := store.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx() error = %v", err)
	}
	got, err := tx.GetChallengeForUpdate(ctx, challenge.ID)
	if err != nil {
		t.Fatalf("GetChallengeForUpdate() error = %v", err)
	}
	if got.UserID != challenge.UserID || got.UserName != challenge.UserName {
		t.Errorf("GetChallengeForUpdate() = %+v, want %+v", got, challenge)
	}
	if err := tx.DeleteChallenge(ctx, challenge.ID); err != nil {
		t.Fatalf("DeleteChallenge() error = %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	second, err := store.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx() error = %v", err)
	}
	defer second.Rollback()
	if _, err := second.GetChallengeForUpdate(ctx, challenge.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("second GetChallengeForUpdate() error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestTxRollbackDiscardsWrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	challenge := storage.Challenge{
		ID:        "challenge-2",
		UserID:    "user-5",
		UserName:  "rollback@example.com",
		CreatedAt: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC),
	}
	if err := store.CreateChallenge(ctx, challenge); err != nil {
		t.Fatalf("CreateChallenge() error = %v", err)
	}

	tx, err := store.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx() error = %v", err)
	}
	if err := tx.CreateUser(ctx, testUser("user-5", "rollback@example.com")); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if err := tx.DeleteChallenge(ctx, challenge.ID); err != nil {
		t.Fatalf("DeleteChallenge() error = %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback() error = %v", err)
	}

	if _, err := store.GetUser(ctx, "user-5"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetUser() after rollback error = %v, want %v", err, storage.ErrNotFound)
	}

	check, err := store.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx() error = %v", err)
	}
	defer check.Rollback()
	if _, err := check.GetChallengeForUpdate(ctx, challenge.ID); err != nil {
		t.Errorf("challenge should survive rollback, got error = %v", err)
	}
}

func TestConcurrentChallengeConsumption(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	challenge := storage.Challenge{
		ID:        "challenge-race",
		UserID:    "user-6",
		UserName:  "race@example.com",
		CreatedAt: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC),
	}
	if err := store.CreateChallenge(ctx, challenge); err != nil {
		t.Fatalf("CreateChallenge() error = %v", err)
	}

	const attempts = 8
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- consumeChallenge(ctx, store, challenge.ID)
		}()
	}
	wg.Wait()
	close(results)

	var wins, misses int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, storage.ErrNotFound):
			misses++
		default:
			t.Errorf("consume error = %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("wins = %d, want exactly 1", wins)
	}
	if misses != attempts-1 {
		t.Errorf("misses = %d, want %d", misses, attempts-1)
	}
}

func consumeChallenge(ctx context.Context, store *Store, challengeID string) error {
	tx, err := store.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.GetChallengeForUpdate(ctx, challengeID); err != nil {
		return err
	}
	if err := tx.DeleteChallenge(ctx, challengeID); err != nil {
		return err
	}
	return tx.Commit()
}
