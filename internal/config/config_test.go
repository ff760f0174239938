package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "3000" {
		t.Fatalf("expected default port 3000, got %q", cfg.Server.Port)
	}
	if cfg.Storage.Backend != BackendMemory {
		t.Fatalf("expected memory backend, got %q", cfg.Storage.Backend)
	}
	if cfg.Database != nil {
		t.Fatalf("expected no database config, got %+v", cfg.Database)
	}
	if cfg.Observability == nil {
		t.Fatalf("expected default observability config")
	}
	if cfg.Observability.ServiceName != ServiceName {
		t.Fatalf("expected service name %q, got %q", ServiceName, cfg.Observability.ServiceName)
	}
	if cfg.Observability.Environment != cfg.Primary.Env {
		t.Fatalf("expected environment to follow primary env")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SHOPS_PRIMARY__ENV", "production")
	t.Setenv("SHOPS_SERVER__PORT", "8081")
	t.Setenv("SHOPS_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SHOPS_STORAGE__SEED", "true")
	t.Setenv("SHOPS_OBSERVABILITY__LOGGING__LEVEL", "warn")
	t.Setenv("SHOPS_OBSERVABILITY__LOGGING__SLOW_QUERY_THRESHOLD", "250ms")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8081" {
		t.Fatalf("expected port 8081, got %q", cfg.Server.Port)
	}
	if got := cfg.Server.CORSAllowedOrigins; len(got) != 2 || got[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", got)
	}
	if !cfg.Storage.Seed {
		t.Fatalf("expected seed enabled")
	}
	if cfg.Observability.Logging.Level != "warn" {
		t.Fatalf("expected warn level, got %q", cfg.Observability.Logging.Level)
	}
	if cfg.Observability.Logging.SlowQueryThreshold != 250*time.Millisecond {
		t.Fatalf("unexpected threshold: %v", cfg.Observability.Logging.SlowQueryThreshold)
	}
	// Defaults for keys that were not set survive.
	if cfg.Observability.Logging.Format != "json" {
		t.Fatalf("expected default json format, got %q", cfg.Observability.Logging.Format)
	}
	if !cfg.Observability.IsProduction() {
		t.Fatalf("expected production environment")
	}
}

func TestLoadConfigPostgresRequiresDatabase(t *testing.T) {
	t.Setenv("SHOPS_STORAGE__BACKEND", "postgres")

	_, err := LoadConfig()
	if err == nil || !strings.Contains(err.Error(), "database config is required") {
		t.Fatalf("expected database config error, got %v", err)
	}
}

func TestLoadConfigPostgres(t *testing.T) {
	t.Setenv("SHOPS_STORAGE__BACKEND", "postgres")
	t.Setenv("SHOPS_DATABASE__HOST", "localhost")
	t.Setenv("SHOPS_DATABASE__USER", "shops")
	t.Setenv("SHOPS_DATABASE__PASSWORD", "secret")
	t.Setenv("SHOPS_DATABASE__NAME", "shops")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsPostgres() {
		t.Fatalf("expected postgres backend")
	}
	if cfg.Database.Port != 5432 || cfg.Database.MaxOpenConns != 25 || !cfg.Database.AutoMigrate {
		t.Fatalf("expected database defaults, got %+v", cfg.Database)
	}
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	t.Setenv("SHOPS_STORAGE__BACKEND", "sqlite")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestObservabilityValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ObservabilityConfig)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *ObservabilityConfig) {}},
		{name: "bad level", mutate: func(c *ObservabilityConfig) { c.Logging.Level = "verbose" }, wantErr: true},
		{name: "negative threshold", mutate: func(c *ObservabilityConfig) { c.Logging.SlowQueryThreshold = -time.Second }, wantErr: true},
		{name: "missing service", mutate: func(c *ObservabilityConfig) { c.ServiceName = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultObservabilityConfig()
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetLogLevel(t *testing.T) {
	c := DefaultObservabilityConfig()
	c.Logging.Level = ""
	c.Environment = "development"
	if got := c.GetLogLevel(); got != "debug" {
		t.Fatalf("expected debug, got %q", got)
	}
	c.Environment = "production"
	if got := c.GetLogLevel(); got != "info" {
		t.Fatalf("expected info, got %q", got)
	}
}
