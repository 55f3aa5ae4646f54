package storage

import (
	"context"
	"time"

	apperrors "github.com/fluxauth/flux/internal/platform/errors"
	"github.com/fluxauth/flux/internal/services/auth/user"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// Challenge is a single-use nonce keyed by its transport encoding. It exists
// from the start operation until exactly one completion consumes it.
type Challenge struct {
	ID        string // unpadded base64url of the challenge bytes
	UserID    string // candidate owner; may not exist yet for registrations
	UserName  string // email being registered or logged into
	CreatedAt time.Time
}

// Credential is a registered authenticator public key.
type Credential struct {
	ID                 string // externally supplied credential identifier
	UserID             string
	PublicKey          []byte // SPKI DER
	PublicKeyAlgorithm int64  // COSE identifier
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// UserStore reads user identity records.
type UserStore interface {
	GetUser(ctx context.Context, userID string) (user.User, error)
	GetUserByEmail(ctx context.Context, email string) (user.User, error)
	GetUsers(ctx context.Context, userIDs []string) ([]user.User, error)
}

// CredentialStore reads registered credentials.
type CredentialStore interface {
	GetCredential(ctx context.Context, credentialID string) (Credential, error)
	ListCredentialsByUser(ctx context.Context, userID string) ([]Credential, error)
}

// ChallengeStore persists issued challenges. Creation happens outside any
// transaction; consumption only ever happens through a Tx.
type ChallengeStore interface {
	CreateChallenge(ctx context.Context, challenge Challenge) error
}

// TxStore opens write transactions. Completion flows must do all challenge
// reads and every write through the returned Tx so the single-use invariant
// is visible at each call site.
type TxStore interface {
	BeginTx(ctx context.Context) (Tx, error)
}

// Tx is an exclusive write transaction. GetChallengeForUpdate holds the
// database write lock until Commit or Rollback, so concurrent completions of
// the same challenge serialize and at most one observes the row.
type Tx interface {
	GetChallengeForUpdate(ctx context.Context, challengeID string) (Challenge, error)
	DeleteChallenge(ctx context.Context, challengeID string) error
	CreateUser(ctx context.Context, u user.User) error
	CreateCredential(ctx context.Context, credential Credential) error
	GetUser(ctx context.Context, userID string) (user.User, error)
	Commit() error
	Rollback() error
}
