package passkey

import (
	"github.com/caarlos0/env/v11"
)

// Config controls the relying party identity bound into every challenge.
type Config struct {
	RPID   string `env:"FLUX_RP_ID"   envDefault:"localhost"`
	RPName string `env:"FLUX_RP_NAME" envDefault:"Flux"`
}

// LoadConfigFromEnv returns relying party configuration with defaults.
func LoadConfigFromEnv() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{
			RPID:   "localhost",
			RPName: "Flux",
		}
	}
	if cfg.RPID == "" {
		cfg.RPID = "localhost"
	}
	if cfg.RPName == "" {
		cfg.RPName = "Flux"
	}
	return cfg
}
