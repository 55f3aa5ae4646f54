// Package token mints session tokens for authenticated users.
package token

import (
	"crypto/rsa"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fluxauth/flux/internal/platform/config"
)

// Config holds session token settings sourced from the environment.
type Config struct {
	PrivateKeyFile string        `env:"FLUX_PRIVATE_KEY_FILE" envDefault:"data/private.pem"`
	TokenTTL       time.Duration `env:"FLUX_TOKEN_TTL" envDefault:"7200h"`
}

// LoadConfigFromEnv loads token settings, falling back to defaults when the
// environment cannot be parsed.
func LoadConfigFromEnv() Config {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{PrivateKeyFile: "data/private.pem", TokenTTL: 7200 * time.Hour}
	}
	return cfg
}

// LoadPrivateKey reads an RSA private key from a PEM file.
func LoadPrivateKey(path string) (*rsa.PrivateKey, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read private key file: %w", err)
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return key, nil
}

// Minter signs RS256 session tokens.
type Minter struct {
	key *rsa.PrivateKey
	ttl time.Duration

	// now is a test hook.
	now func() time.Time
}

// NewMinter returns a Minter signing with the given key. A zero or negative
// ttl falls back to the default from Config.
func NewMinter(key *rsa.PrivateKey, ttl time.Duration) (*Minter, error) {
	if key == nil {
		return nil, fmt.Errorf("private key is required")
	}
	if ttl <= 0 {
		ttl = 7200 * time.Hour
	}
	return &Minter{key: key, ttl: ttl, now: time.Now}, nil
}

// Mint signs a session token whose subject is the user id.
func (m *Minter) Mint(userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("user id is required")
	}

	now := m.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(m.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
