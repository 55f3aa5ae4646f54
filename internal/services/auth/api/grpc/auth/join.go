package auth

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	authv1 "github.com/fluxauth/flux/api/gen/go/auth/v1"
	apperrors "github.com/fluxauth/flux/internal/platform/errors"
	"github.com/fluxauth/flux/internal/services/auth/passkey"
	"github.com/fluxauth/flux/internal/services/auth/storage"
)

// Join starts a passkey ceremony for an email address. New emails receive
// creation options with a candidate user id; registered emails receive
// request options scoped to their credentials. Either way the challenge is
// persisted before the response leaves, so both branches can be completed.
func (s *AuthService) Join(ctx context.Context, in *authv1.JoinRequest) (*authv1.JoinResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "join request is required")
	}

	email := strings.TrimSpace(in.GetEmail())
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeValidation, "invalid email address", err))
	}

	var (
		result    passkey.JoinResult
		challenge storage.Challenge
	)

	existing, err := s.store.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		credentials, err := s.store.ListCredentialsByUser(ctx, existing.ID)
		if err != nil {
			return nil, handleDomainError(apperrors.Wrap(apperrors.CodeUnknown, "list user credentials", err))
		}
		credentialIDs := make([]string, 0, len(credentials))
		for _, credential := range credentials {
			credentialIDs = append(credentialIDs, credential.ID)
		}

		options, err := s.builder().RequestOptions(credentialIDs)
		if err != nil {
			return nil, handleDomainError(apperrors.Wrap(apperrors.CodeUnknown, "build request options", err))
		}
		result.Request = &options
		challenge = storage.Challenge{
			ID:       passkey.EncodeChallenge(options.PublicKey.Challenge),
			UserID:   existing.ID,
			UserName: email,
		}
	case errors.Is(err, storage.ErrNotFound):
		options, candidateID, err := s.builder().CreationOptions(email)
		if err != nil {
			return nil, handleDomainError(apperrors.Wrap(apperrors.CodeUnknown, "build creation options", err))
		}
		result.Creation = &options
		challenge = storage.Challenge{
			ID:       passkey.EncodeChallenge(options.PublicKey.Challenge),
			UserID:   candidateID,
			UserName: email,
		}
	default:
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeUnknown, "look up user by email", err))
	}

	challenge.CreatedAt = s.clock().UTC()
	if err := s.store.CreateChallenge(ctx, challenge); err != nil {
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeUnknown, "persist challenge", err))
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeUnknown, "encode join response", err))
	}

	return &authv1.JoinResponse{Response: string(payload)}, nil
}
