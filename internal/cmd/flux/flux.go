// Package flux wires flag and environment parsing for the flux command.
package flux

import (
	"context"
	"flag"
	"strconv"
	"strings"

	server "github.com/fluxauth/flux/internal/services/auth/app"
)

// Config holds flux command configuration.
type Config struct {
	Port int
}

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig parses flags into a Config. Flags take precedence over the
// FLUX_GRPC_PORT environment variable.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (Config, error) {
	cfg := Config{
		Port: envPortOrDefault(lookup, "FLUX_GRPC_PORT", 8086),
	}

	fs.IntVar(&cfg.Port, "port", cfg.Port, "The flux gRPC server port")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the flux server.
func Run(ctx context.Context, cfg Config) error {
	return server.Run(ctx, cfg.Port)
}

func envPortOrDefault(lookup EnvLookup, key string, fallback int) int {
	if lookup == nil {
		return fallback
	}
	value, ok := lookup(key)
	if !ok {
		return fallback
	}
	port, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || port < 0 {
		return fallback
	}
	return port
}
