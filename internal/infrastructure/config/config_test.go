package config

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.APIBaseURL != "http://localhost:8080/api" {
		t.Fatalf("api base url = %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("timeout = %v", cfg.HTTPTimeout)
	}
	if cfg.Session.Backend != "file" {
		t.Fatalf("session backend = %q", cfg.Session.Backend)
	}
	if !strings.HasSuffix(cfg.Session.Path, "session.json") {
		t.Fatalf("session path = %q", cfg.Session.Path)
	}
	if cfg.HydrateRedirect {
		t.Fatal("hydrate redirect must default off")
	}
	if cfg.WatchInterval != time.Minute {
		t.Fatalf("watch interval = %v", cfg.WatchInterval)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://reports.example.org/api")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("SESSION_PATH", "/var/lib/console/session.json")
	t.Setenv("HYDRATE_REDIRECT", "true")
	t.Setenv("WATCH_INTERVAL", "30s")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.APIBaseURL != "https://reports.example.org/api" {
		t.Fatalf("api base url = %q", cfg.APIBaseURL)
	}
	if cfg.Session.Backend != "redis" || cfg.Redis.Addr != "cache:6379" {
		t.Fatalf("session = %+v redis = %+v", cfg.Session, cfg.Redis)
	}
	if cfg.Session.Path != "/var/lib/console/session.json" {
		t.Fatalf("session path = %q", cfg.Session.Path)
	}
	if !cfg.HydrateRedirect {
		t.Fatal("hydrate redirect override ignored")
	}
	if cfg.WatchInterval != 30*time.Second {
		t.Fatalf("watch interval = %v", cfg.WatchInterval)
	}
}
