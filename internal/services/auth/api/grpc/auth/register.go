package auth

import (
	"context"
	"encoding/json"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	authv1 "github.com/fluxauth/flux/api/gen/go/auth/v1"
	apperrors "github.com/fluxauth/flux/internal/platform/errors"
	"github.com/fluxauth/flux/internal/services/auth/passkey"
	"github.com/fluxauth/flux/internal/services/auth/storage"
	"github.com/fluxauth/flux/internal/services/auth/user"
)

// completeRegistrationPayload is the JSON carried in a registration
// completion request.
type completeRegistrationPayload struct {
	FirstName  string                                     `json:"firstName" validate:"required"`
	LastName   string                                     `json:"lastName"  validate:"required"`
	Locale     *string                                    `json:"locale,omitempty"`
	Credential passkey.PublicKeyCredentialWithAttestation `json:"credential" validate:"required"`
}

// CompleteRegistration consumes a creation challenge, creates the user it was
// issued for, stores the offered public key, and mints a session token. The
// user, the credential, and the challenge delete commit atomically.
func (s *AuthService) CompleteRegistration(ctx context.Context, in *authv1.CompleteRegistrationRequest) (*authv1.CompleteRegistrationResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "complete registration request is required")
	}

	var payload completeRegistrationPayload
	if err := json.Unmarshal([]byte(in.GetRequest()), &payload); err != nil {
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeValidation, "decode registration request", err))
	}
	if err := s.validate.Struct(payload); err != nil {
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeValidation, "invalid registration request", err))
	}

	clientData, err := passkey.DecodeClientData(payload.Credential.Response.ClientDataJSON)
	if err != nil {
		return nil, handleDomainError(err)
	}
	if err := clientData.Validate(s.passkeyConfig.RPID, passkey.ClientDataTypeCreate); err != nil {
		return nil, handleDomainError(err)
	}

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeUnknown, "begin transaction", err))
	}
	defer tx.Rollback()

	challenge, err := tx.GetChallengeForUpdate(ctx, clientData.Challenge)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, handleDomainError(apperrors.New(apperrors.CodeUserChallengeNotFound, "challenge not found"))
		}
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeUnknown, "read challenge", err))
	}

	created, err := user.CreateUser(user.CreateUserInput{
		ID:        challenge.UserID,
		Email:     challenge.UserName,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Locale:    payload.Locale,
	}, s.clock)
	if err != nil {
		return nil, handleDomainError(err)
	}

	if err := tx.CreateUser(ctx, created); err != nil {
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeUnknown, "create user", err))
	}

	now := s.clock().UTC()
	if err := tx.CreateCredential(ctx, storage.Credential{
		ID:                 payload.Credential.ID,
		UserID:             created.ID,
		PublicKey:          payload.Credential.Response.PublicKey,
		PublicKeyAlgorithm: payload.Credential.Response.PublicKeyAlgorithm,
		CreatedAt:          now,
		UpdatedAt:          now,
	}); err != nil {
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeUnknown, "create credential", err))
	}

	if err := tx.DeleteChallenge(ctx, challenge.ID); err != nil {
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeUnknown, "consume challenge", err))
	}
	if err := tx.Commit(); err != nil {
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeUnknown, "commit registration", err))
	}

	jwt, err := s.minter.Mint(created.ID)
	if err != nil {
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeUnknown, "mint session token", err))
	}

	return &authv1.CompleteRegistrationResponse{Jwt: jwt}, nil
}
