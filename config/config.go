package config

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
	StoreBadger   = "badger"
	StoreToken    = "token"
)

// Config holds all application settings, read from the environment
// with an optional .env file for local development.
type Config struct {
	// Store selects the roster backend: postgres, sqlite, badger or token.
	Store string `envconfig:"DRAFTPICK_STORE" default:"sqlite"`

	// DatabaseURL is required for the postgres backend only.
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// DataDir holds the sqlite file and the badger directory.
	DataDir string `envconfig:"DRAFTPICK_DATA_DIR" default:".draftpick"`

	// StateFile is where the token backend keeps the signed roster
	// token. Defaults to <DataDir>/roster.token.
	StateFile string `envconfig:"DRAFTPICK_STATE_FILE"`

	// ShareSecret signs share tokens. Sessions exchanging tokens must
	// agree on it.
	ShareSecret string `envconfig:"DRAFTPICK_SHARE_SECRET" default:"draftpick-local-secret"`

	// Snapshot archive settings. All five must be set for the archive
	// command to be available.
	R2AccountID       string `envconfig:"R2_ACCOUNT_ID"`
	R2AccessKeyID     string `envconfig:"R2_ACCESS_KEY_ID"`
	R2SecretAccessKey string `envconfig:"R2_SECRET_ACCESS_KEY"`
	R2BucketName      string `envconfig:"R2_BUCKET_NAME"`
	R2PublicBaseURL   string `envconfig:"R2_PUBLIC_BASE_URL"`
}

// Load reads configuration from the environment. A missing .env file
// is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment configuration: %w", err)
	}

	switch cfg.Store {
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when DRAFTPICK_STORE=%s", StorePostgres)
		}
	case StoreSQLite, StoreBadger, StoreToken:
	default:
		return nil, fmt.Errorf("unknown DRAFTPICK_STORE %q: expected %s, %s, %s or %s",
			cfg.Store, StorePostgres, StoreSQLite, StoreBadger, StoreToken)
	}

	if cfg.StateFile == "" {
		cfg.StateFile = filepath.Join(cfg.DataDir, "roster.token")
	}

	return &cfg, nil
}

// ArchiveEnabled reports whether snapshot archiving is fully configured.
func (c *Config) ArchiveEnabled() bool {
	return c.R2AccountID != "" &&
		c.R2AccessKeyID != "" &&
		c.R2SecretAccessKey != "" &&
		c.R2BucketName != "" &&
		c.R2PublicBaseURL != ""
}
