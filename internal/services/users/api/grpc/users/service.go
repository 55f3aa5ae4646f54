// Package users implements the users.v1.UsersService gRPC API, a bulk
// read surface over auth user records for collaborating services.
package users

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	usersv1 "github.com/fluxauth/flux/api/gen/go/users/v1"
	apperrors "github.com/fluxauth/flux/internal/platform/errors"
	"github.com/fluxauth/flux/internal/services/auth/storage"
	"github.com/fluxauth/flux/internal/services/auth/user"
)

const maxGetUsersBatch = 100

// UsersService implements the users.v1.UsersService gRPC API.
type UsersService struct {
	usersv1.UnimplementedUsersServiceServer
	store storage.UserStore
}

// NewUsersService builds a service over the given user store.
func NewUsersService(store storage.UserStore) *UsersService {
	return &UsersService{store: store}
}

// GetUsers returns the users matching the requested ids. Unknown ids are
// silently skipped so callers can resolve mixed batches in one round trip.
func (s *UsersService) GetUsers(ctx context.Context, in *usersv1.GetUsersRequest) (*usersv1.GetUsersResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get users request is required")
	}
	if len(in.GetUserIds()) == 0 {
		return &usersv1.GetUsersResponse{}, nil
	}
	if len(in.GetUserIds()) > maxGetUsersBatch {
		return nil, apperrors.New(apperrors.CodeValidation, "too many user ids requested").ToGRPCStatus()
	}

	found, err := s.store.GetUsers(ctx, in.GetUserIds())
	if err != nil {
		return nil, apperrors.HandleError(apperrors.Wrap(apperrors.CodeUnknown, "read users", err))
	}

	users := make([]*usersv1.User, 0, len(found))
	for _, u := range found {
		users = append(users, userToProto(u))
	}
	return &usersv1.GetUsersResponse{Users: users}, nil
}

func userToProto(u user.User) *usersv1.User {
	proto := &usersv1.User{
		Id:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
	if u.Locale != nil {
		proto.Locale = *u.Locale
	}
	return proto
}
