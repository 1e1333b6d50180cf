package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full deployment configuration of the console, loaded from the
// environment. Defaults match the development backend.
type Config struct {
	APIBaseURL       string        `env:"API_BASE_URL,       default=http://localhost:8080/api"`
	AnalyticsBaseURL string        `env:"ANALYTICS_BASE_URL, default=http://localhost:9090/api/v1"`
	AnalyticsHeader  string        `env:"ANALYTICS_HEADER"`
	GeocodingBaseURL string        `env:"GEOCODING_BASE_URL, default=https://geocoding-api.open-meteo.com/v1"`
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT,       default=30s"`
	LogLevel         string        `env:"LOG_LEVEL,          default=info"`
	LogPretty        bool          `env:"LOG_PRETTY,         default=true"`

	// HydrateRedirect forces a redirect to the login screen when the stored
	// session snapshot fails to parse during startup hydration. Off by
	// default: hydration falls back to anonymous without navigating.
	HydrateRedirect bool `env:"HYDRATE_REDIRECT, default=false"`

	WatchInterval time.Duration `env:"WATCH_INTERVAL, default=1m"`
	OpsPort       string        `env:"OPS_PORT,       default=8090"`

	Session SessionConfig
	Redis   RedisConfig
}

// SessionConfig selects the persistent session store backend.
type SessionConfig struct {
	Backend string `env:"SESSION_BACKEND, default=file"`
	Path    string `env:"SESSION_PATH"`
}

// RedisConfig applies when SESSION_BACKEND=redis.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Session.Path == "" {
		cfg.Session.Path = defaultSessionPath()
	}
	return &cfg, nil
}

// defaultSessionPath resolves ~/.incident-console/session.json, falling back
// to the working directory when the home directory is unknown.
func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(home, ".incident-console", "session.json")
}
