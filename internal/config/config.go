package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config is everything the client reads from the environment. Defaults match
// a backend running locally on its stock port.
type Config struct {
	// APIBaseURL is the bkbWeb backend root, including the /api prefix.
	APIBaseURL string `env:"BKB_API_URL" envDefault:"http://localhost:3001/api"`

	// BackendTimeout bounds every backend call.
	BackendTimeout time.Duration `env:"BKB_TIMEOUT" envDefault:"10s"`

	// DataDir holds the local snapshot database. Empty means ~/.bkbweb.
	DataDir string `env:"BKB_DATA_DIR"`

	LogLevel string `env:"BKB_LOG_LEVEL" envDefault:"info"`

	// AdminAddr is where `bkbweb admin serve` listens. Loopback by default:
	// the panel carries no real authentication.
	AdminAddr string `env:"BKB_ADMIN_ADDR" envDefault:"127.0.0.1:8090"`

	// AdminPassword is the fallback password check used when the backend has
	// no verify endpoint. Not a credential system.
	AdminPassword string `env:"BKB_ADMIN_PASSWORD" envDefault:"bkb-admin-2024"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".bkbweb")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("BKB_API_URL is required")
	}
	if c.BackendTimeout <= 0 {
		return fmt.Errorf("BKB_TIMEOUT must be positive")
	}
	if c.AdminAddr == "" {
		return fmt.Errorf("BKB_ADMIN_ADDR is required")
	}
	return nil
}
