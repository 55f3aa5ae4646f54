package auth

import (
	"io"
	"time"

	"github.com/go-playground/validator/v10"

	authv1 "github.com/fluxauth/flux/api/gen/go/auth/v1"
	apperrors "github.com/fluxauth/flux/internal/platform/errors"
	"github.com/fluxauth/flux/internal/services/auth/passkey"
	"github.com/fluxauth/flux/internal/services/auth/storage"
	"github.com/fluxauth/flux/internal/services/auth/token"
)

// Storage is the persistence surface the auth service needs: reads for users
// and credentials, challenge issuance, and write transactions for the
// completion flows.
type Storage interface {
	storage.UserStore
	storage.CredentialStore
	storage.ChallengeStore
	storage.TxStore
}

// AuthService implements the auth.v1.AuthService gRPC API.
//
// It owns the two-phase passkey flows: Join issues challenges, the Complete
// calls consume them. All challenge consumption happens inside a single write
// transaction so a challenge answers at most one completion.
type AuthService struct {
	authv1.UnimplementedAuthServiceServer
	store         Storage
	passkeyConfig passkey.Config
	registry      passkey.AlgorithmRegistry
	minter        *token.Minter
	validate      *validator.Validate

	// test hooks
	clock         func() time.Time
	newUserID     func() (string, error)
	challengeRand io.Reader
}

// NewAuthService builds a service with defaults for the auth package.
func NewAuthService(store Storage, minter *token.Minter) *AuthService {
	return &AuthService{
		store:         store,
		passkeyConfig: passkey.LoadConfigFromEnv(),
		registry:      passkey.DefaultRegistry(),
		minter:        minter,
		validate:      validator.New(),
		clock:         time.Now,
	}
}

// builder assembles challenge options with the service's hooks applied.
func (s *AuthService) builder() passkey.Builder {
	return passkey.Builder{
		RPID:      s.passkeyConfig.RPID,
		RPName:    s.passkeyConfig.RPName,
		NewUserID: s.newUserID,
		Rand:      s.challengeRand,
	}
}

// handleDomainError converts domain errors to gRPC statuses.
func handleDomainError(err error) error {
	return apperrors.HandleError(err)
}
