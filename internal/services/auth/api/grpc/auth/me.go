package auth

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	authv1 "github.com/fluxauth/flux/api/gen/go/auth/v1"
	apperrors "github.com/fluxauth/flux/internal/platform/errors"
	"github.com/fluxauth/flux/internal/services/auth/storage"
)

// Me returns the profile of an authenticated user.
func (s *AuthService) Me(ctx context.Context, in *authv1.MeRequest) (*authv1.MeResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "me request is required")
	}

	userID := strings.TrimSpace(in.GetUserId())
	if userID == "" {
		return nil, handleDomainError(apperrors.New(apperrors.CodeValidation, "user id is required"))
	}

	found, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, handleDomainError(apperrors.New(apperrors.CodeUserNotFound, "user not found"))
		}
		return nil, handleDomainError(apperrors.Wrap(apperrors.CodeUnknown, "read user", err))
	}

	response := &authv1.MeResponse{
		Id:        found.ID,
		Email:     found.Email,
		FirstName: found.FirstName,
		LastName:  found.LastName,
	}
	if found.Locale != nil {
		response.Locale = *found.Locale
	}
	return response, nil
}
