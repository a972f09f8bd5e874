// Package config loads seeder settings from the environment, after merging an
// optional .env file from the working directory.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Backend names a document store implementation.
type Backend string

const (
	BackendFirestore Backend = "firestore"
	BackendSQLite    Backend = "sqlite"
	BackendRedis     Backend = "redis"
)

// Config holds all seeder configuration.
type Config struct {
	Backend Backend `env:"SEED_BACKEND" envDefault:"firestore"`

	// Firestore
	CredentialsPath string `env:"GOOGLE_APPLICATION_CREDENTIALS" envDefault:"serviceAccountKey.json"`
	ProjectID       string `env:"FIRESTORE_PROJECT_ID"`

	// Local document store (SQLite)
	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/seed.db"`

	// Redis mirror
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"docs"`

	// Write events. Empty KafkaBrokers disables publishing.
	KafkaBrokers string `env:"KAFKA_BROKERS"`
	EventsTopic  string `env:"SEED_EVENTS_TOPIC" envDefault:"seed.writes"`

	// RandomSeed fixes the stat generator when non-zero.
	RandomSeed int64 `env:"SEED_RANDOM_SEED" envDefault:"0"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Brokers splits KafkaBrokers on commas, dropping blanks.
func (c *Config) Brokers() []string {
	if c.KafkaBrokers == "" {
		return nil
	}
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// EventsEnabled reports whether write events should be published.
func (c *Config) EventsEnabled() bool {
	return len(c.Brokers()) > 0 && c.EventsTopic != ""
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFirestore:
		if strings.TrimSpace(c.CredentialsPath) == "" {
			return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS is required for the firestore backend")
		}
	case BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("unknown SEED_BACKEND %q (want firestore, sqlite or redis)", c.Backend)
	}
	return nil
}

// RequireBackend returns an error unless Backend is one of allowed.
func (c *Config) RequireBackend(allowed ...Backend) error {
	for _, b := range allowed {
		if c.Backend == b {
			return nil
		}
	}
	names := make([]string, len(allowed))
	for i, b := range allowed {
		names[i] = string(b)
	}
	return fmt.Errorf("SEED_BACKEND %q is not supported here (want %s)", c.Backend, strings.Join(names, " or "))
}

// Load reads .env (if present) and the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Backend = Backend(strings.ToLower(string(cfg.Backend)))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
