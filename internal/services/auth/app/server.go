package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	authv1 "github.com/fluxauth/flux/api/gen/go/auth/v1"
	usersv1 "github.com/fluxauth/flux/api/gen/go/users/v1"
	authservice "github.com/fluxauth/flux/internal/services/auth/api/grpc/auth"
	authsqlite "github.com/fluxauth/flux/internal/services/auth/storage/sqlite"
	"github.com/fluxauth/flux/internal/services/auth/token"
	usersservice "github.com/fluxauth/flux/internal/services/users/api/grpc/users"
)

// Server hosts the flux gRPC services.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *authsqlite.Store
}

// New creates a configured server listening on the provided port.
func New(port int) (*Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("listen on port %d: %w", port, err)
	}

	store, err := openStore()
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	minter, err := newMinter()
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, err
	}

	grpcServer := grpc.NewServer()
	authService := authservice.NewAuthService(store, minter)
	usersService := usersservice.NewUsersService(store)
	healthServer := health.NewServer()
	authv1.RegisterAuthServiceServer(grpcServer, authService)
	usersv1.RegisterUsersServiceServer(grpcServer, usersService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("auth.v1.AuthService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("users.v1.UsersService", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
	}, nil
}

// Addr returns the listener address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a server until the context ends.
func Run(ctx context.Context, port int) error {
	grpcServer, err := New(port)
	if err != nil {
		return err
	}
	return grpcServer.Serve(ctx)
}

// Serve starts the server and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.closeStore()

	log.Printf("flux server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	handleErr := func(err error) error {
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		return handleErr(<-serveErr)
	case err := <-serveErr:
		return handleErr(err)
	}
}

func openStore() (*authsqlite.Store, error) {
	path := strings.TrimSpace(os.Getenv("FLUX_DB_PATH"))
	if path == "" {
		path = filepath.Join("data", "flux.db")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := authsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	return store, nil
}

func newMinter() (*token.Minter, error) {
	cfg := token.LoadConfigFromEnv()
	key, err := token.LoadPrivateKey(cfg.PrivateKeyFile)
	if err != nil {
		return nil, fmt.Errorf("load session key: %w", err)
	}
	return token.NewMinter(key, cfg.TokenTTL)
}

func (s *Server) closeStore() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("close store: %v", err)
	}
}
