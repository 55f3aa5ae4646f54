package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fluxauth/flux/internal/services/auth/passkey"
	"github.com/fluxauth/flux/internal/services/auth/token"
)

var (
	testKeyOnce sync.Once
	testKey     *rsa.PrivateKey
)

func sessionKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	testKeyOnce.Do(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			t.Fatalf("generate session key: %v", err)
		}
		testKey = key
	})
	return testKey
}

var testTime = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, store *fakeStore) *AuthService {
	t.Helper()

	minter, err := token.NewMinter(sessionKey(t), time.Hour)
	if err != nil {
		t.Fatalf("NewMinter() error = %v", err)
	}
	return &AuthService{
		store:         store,
		passkeyConfig: passkey.Config{RPID: "localhost", RPName: "Flux"},
		registry:      passkey.DefaultRegistry(),
		minter:        minter,
		validate:      validator.New(),
		clock:         func() time.Time { return testTime },
	}
}

// tokenSubject parses a minted session token and returns its subject.
func tokenSubject(t *testing.T, signed string) string {
	t.Helper()

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(signed, &claims, func(*jwt.Token) (any, error) {
		return &sessionKey(t).PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}), jwt.WithTimeFunc(func() time.Time { return testTime }))
	if err != nil {
		t.Fatalf("parse session token: %v", err)
	}
	return claims.Subject
}

// statusDetails extracts the gRPC code and the errdetails reason from an
// error returned by a handler.
func statusDetails(t *testing.T, err error) (codes.Code, string) {
	t.Helper()

	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("error is not a gRPC status: %v", err)
	}
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok {
			return st.Code(), info.Reason
		}
	}
	return st.Code(), ""
}
