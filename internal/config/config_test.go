package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TRACKING_PORT", "")
	t.Setenv("SIM_INTERVAL_SECONDS", "")
	t.Setenv("TOKEN_VALIDITY_SECONDS", "")
	t.Setenv("TOKEN_SECRET", "")

	cfg := Load()
	if cfg.Port != "3000" {
		t.Fatalf("expected default port 3000, got %s", cfg.Port)
	}
	if cfg.SimInterval != 15*time.Second {
		t.Fatalf("expected default interval 15s, got %v", cfg.SimInterval)
	}
	if cfg.TokenValidity != 24*time.Hour {
		t.Fatalf("expected default validity 24h, got %v", cfg.TokenValidity)
	}
	if cfg.TokenSecret == "" {
		t.Fatal("expected non-empty token secret")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TRACKING_PORT", "8080")
	t.Setenv("SIM_INTERVAL_SECONDS", "5")
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "10")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.SimInterval != 5*time.Second {
		t.Fatalf("expected interval 5s, got %v", cfg.SimInterval)
	}
	if cfg.TokenSecret != "s3cret" {
		t.Fatalf("expected secret override, got %s", cfg.TokenSecret)
	}
	if cfg.RateLimitPerMinute != 10 {
		t.Fatalf("expected rate limit 10, got %d", cfg.RateLimitPerMinute)
	}
}

func TestReadIntIgnoresGarbage(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "lots")
	cfg := Load()
	if cfg.RateLimitPerMinute != 120 {
		t.Fatalf("expected fallback 120, got %d", cfg.RateLimitPerMinute)
	}
}
