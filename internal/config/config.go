package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	DBPath          string
	UploadDir       string
	ShutdownTimeout time.Duration
	SessionTTL      time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		DBPath:          envOrDefault("DB_PATH", "sevencake.db"),
		UploadDir:       envOrDefault("UPLOAD_DIR", "uploads"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", time.Second, 10*time.Second),
		SessionTTL:      envDuration("SESSION_TTL_HOURS", time.Hour, 48*time.Hour),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, unit, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(n) * unit
		}
	}
	return def
}
