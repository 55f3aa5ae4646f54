package auth

import (
	"context"
	"sync"

	"github.com/fluxauth/flux/internal/services/auth/storage"
	"github.com/fluxauth/flux/internal/services/auth/user"
)

// fakeStore is an in-memory Storage implementation. Transactions stage their
// writes and apply them on Commit so tests observe atomicity.
type fakeStore struct {
	mu          sync.Mutex
	users       map[string]user.User
	credentials map[string]storage.Credential
	challenges  map[string]storage.Challenge
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:       make(map[string]user.User),
		credentials: make(map[string]storage.Credential),
		challenges:  make(map[string]storage.Challenge),
	}
}

func (f *fakeStore) GetUser(_ context.Context, userID string) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	found, ok := f.users[userID]
	if !ok {
		return user.User{}, storage.ErrNotFound
	}
	return found, nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, storage.ErrNotFound
}

func (f *fakeStore) GetUsers(_ context.Context, userIDs []string) ([]user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var users []user.User
	for _, id := range userIDs {
		if u, ok := f.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (f *fakeStore) GetCredential(_ context.Context, credentialID string) (storage.Credential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	credential, ok := f.credentials[credentialID]
	if !ok {
		return storage.Credential{}, storage.ErrNotFound
	}
	return credential, nil
}

func (f *fakeStore) ListCredentialsByUser(_ context.Context, userID string) ([]storage.Credential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var credentials []storage.Credential
	for _, credential := range f.credentials {
		if credential.UserID == userID {
			credentials = append(credentials, credential)
		}
	}
	return credentials, nil
}

func (f *fakeStore) CreateChallenge(_ context.Context, challenge storage.Challenge) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.challenges[challenge.ID] = challenge
	return nil
}

func (f *fakeStore) BeginTx(_ context.Context) (storage.Tx, error) {
	return &fakeTx{store: f}, nil
}

type fakeTx struct {
	store             *fakeStore
	stagedUsers       []user.User
	stagedCredentials []storage.Credential
	deletedChallenges []string
	done              bool
}

func (tx *fakeTx) GetChallengeForUpdate(_ context.Context, challengeID string) (storage.Challenge, error) {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	challenge, ok := tx.store.challenges[challengeID]
	if !ok {
		return storage.Challenge{}, storage.ErrNotFound
	}
	return challenge, nil
}

func (tx *fakeTx) DeleteChallenge(_ context.Context, challengeID string) error {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	if _, ok := tx.store.challenges[challengeID]; !ok {
		return storage.ErrNotFound
	}
	tx.deletedChallenges = append(tx.deletedChallenges, challengeID)
	return nil
}

func (tx *fakeTx) CreateUser(_ context.Context, u user.User) error {
	tx.stagedUsers = append(tx.stagedUsers, u)
	return nil
}

func (tx *fakeTx) CreateCredential(_ context.Context, credential storage.Credential) error {
	tx.stagedCredentials = append(tx.stagedCredentials, credential)
	return nil
}

func (tx *fakeTx) GetUser(_ context.Context, userID string) (user.User, error) {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	found, ok := tx.store.users[userID]
	if !ok {
		return user.User{}, storage.ErrNotFound
	}
	return found, nil
}

func (tx *fakeTx) Commit() error {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	for _, u := range tx.stagedUsers {
		tx.store.users[u.ID] = u
	}
	for _, credential := range tx.stagedCredentials {
		tx.store.credentials[credential.ID] = credential
	}
	for _, id := range tx.deletedChallenges {
		delete(tx.store.challenges, id)
	}
	tx.done = true
	return nil
}

func (tx *fakeTx) Rollback() error {
	tx.done = true
	return nil
}
