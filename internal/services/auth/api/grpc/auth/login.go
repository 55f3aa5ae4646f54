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
)

// completeLoginPayload is the JSON carried in a login completion request.
type completeLoginPayload struct {
	Credential passkey.PublicKeyCredentialWithAssertion `json:"credential" validate:"required"`
}

// CompleteLogin verifies an assertion against a stored credential, consumes
// the login challenge, and mints a session token.
//
// Signature verification happens before the transaction opens: a rejected
// assertion must not consume the challenge, so the client can retry against
// the same one.
func (s *AuthService) CompleteLogin(ctx context.Context, in *authv1.CompleteLoginRequest) (*authv1.CompleteLoginResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "complete login request is required")
	}

	var payload completeLoginPayload
	if err := json.Unmarshal([]byte(in.GetRequest()), &payload); err != nil {
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeValidation, "decode login request", err))
	}
	if err := s.validate.Struct(payload); err != nil {
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeValidation, "invalid login request", err))
	}

	response := payload.Credential.Response
	clientData, err := passkey.DecodeClientData(response.ClientDataJSON)
	if err != nil {
		return nil, handleDomainError(err)
	}
	if err := clientData.Validate(s.passkeyConfig.RPID, passkey.ClientDataTypeGet); err != nil {
		return nil, handleDomainError(err)
	}

	credential, err := s.store.GetCredential(ctx, payload.Credential.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, handleDomainError(apperrors.New(apperrors.CodeUserCredentialNotFound, "credential not found"))
		}
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeUnknown, "read credential", err))
	}

	if err := s.registry.VerifyAssertion(
		response.AuthenticatorData,
		response.ClientDataJSON,
		response.Signature,
		credential.PublicKey,
		credential.PublicKeyAlgorithm,
	); err != nil {
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
	if challenge.UserID != credential.UserID {
		return nil, handleDomainError(apperrors.New(apperrors.CodeUserChallengeNotFound, "challenge not found"))
	}

	owner, err := tx.GetUser(ctx, challenge.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, handleDomainError(apperrors.New(apperrors.CodeUserNotFound, "user not found"))
		}
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeUnknown, "read user", err))
	}

	if err := tx.DeleteChallenge(ctx, challenge.ID); err != nil {
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeUnknown, "consume challenge", err))
	}
	if err := tx.Commit(); err != nil {
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeUnknown, "commit login", err))
	}

	jwt, err := s.minter.Mint(owner.ID)
	if err != nil {
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeUnknown, "mint session token", err))
	}

	return &authv1.CompleteLoginResponse{Jwt: jwt}, nil
}
