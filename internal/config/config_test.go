package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "")
	t.Setenv("SESSION_TTL_HOURS", "")

	cfg := FromEnv()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.HTTPAddr)
	}
	if cfg.DBPath != "sevencake.db" {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected 10s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.SessionTTL != 48*time.Hour {
		t.Fatalf("expected 48h session ttl, got %v", cfg.SessionTTL)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DB_PATH", "/tmp/store.db")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "30")
	t.Setenv("SESSION_TTL_HOURS", "1")

	cfg := FromEnv()
	if cfg.HTTPAddr != ":9090" || cfg.DBPath != "/tmp/store.db" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("expected 30s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.SessionTTL != time.Hour {
		t.Fatalf("expected 1h session ttl, got %v", cfg.SessionTTL)
	}
}

func TestEnvDurationIgnoresGarbage(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "soon")

	cfg := FromEnv()
	if cfg.SessionTTL != 48*time.Hour {
		t.Fatalf("expected default ttl for unparsable value, got %v", cfg.SessionTTL)
	}
}
