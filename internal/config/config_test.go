package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "SERVER_HOST", "PROVIDER_TIMEOUT", "YOUTUBE_API_KEY", "SEARCH_MAX_LIMIT", "CORS_ALLOWED_ORIGINS", "CORS_MAX_AGE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host 0.0.0.0, got %q", cfg.Server.Host)
	}
	if cfg.Provider.RequestTimeout != 30*time.Second {
		t.Errorf("expected 30s provider timeout, got %v", cfg.Provider.RequestTimeout)
	}
	if cfg.Search.MaxLimit != 50 {
		t.Errorf("expected search max limit 50, got %d", cfg.Search.MaxLimit)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("expected wildcard CORS origin, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("PROVIDER_TIMEOUT", "5s")
	t.Setenv("SEARCH_MAX_LIMIT", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9999" {
		t.Errorf("expected port 9999, got %q", cfg.Server.Port)
	}
	if cfg.Provider.RequestTimeout != 5*time.Second {
		t.Errorf("expected 5s provider timeout, got %v", cfg.Provider.RequestTimeout)
	}
	if cfg.Search.MaxLimit != 25 {
		t.Errorf("expected search max limit 25, got %d", cfg.Search.MaxLimit)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	t.Run("Bad provider timeout", func(t *testing.T) {
		t.Setenv("PROVIDER_TIMEOUT", "nonsense")
		if _, err := Load(); err == nil {
			t.Error("expected error for invalid PROVIDER_TIMEOUT")
		}
	})

	t.Run("Zero search max limit", func(t *testing.T) {
		t.Setenv("SEARCH_MAX_LIMIT", "0")
		if _, err := Load(); err == nil {
			t.Error("expected error for SEARCH_MAX_LIMIT below 1")
		}
	})

	t.Run("Bad CORS max age", func(t *testing.T) {
		t.Setenv("CORS_MAX_AGE", "later")
		if _, err := Load(); err == nil {
			t.Error("expected error for invalid CORS_MAX_AGE")
		}
	})
}
