package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the REIGN_* environment configuration shared by the binaries.
// Command-line flags take precedence over these values.
type Env struct {
	// DatabaseURL selects the reign archive, e.g. sqlite://reign.db or postgres://...
	DatabaseURL string `env:"REIGN_DATABASE_URL"`
	// DeckFile is a YAML deck to play instead of the embedded one.
	DeckFile string `env:"REIGN_DECK_FILE"`
	LogLevel string `env:"REIGN_LOG_LEVEL" envDefault:"info"`

	APITLSCertFile string `env:"REIGN_API_TLS_CERT_FILE"`
	APITLSKeyFile  string `env:"REIGN_API_TLS_KEY_FILE"`
}

// ParseEnv loads the REIGN_* environment variables.
func ParseEnv() (*Env, error) {
	cfg := &Env{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// TLSEnabled reports whether both TLS files are configured for the API server.
func (e *Env) TLSEnabled() bool {
	return e.APITLSCertFile != "" && e.APITLSKeyFile != ""
}
