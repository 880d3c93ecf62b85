package config

import (
	"os"
	"strconv"
	"time"
)

// Config is built once in cmd/web and handed to constructors.
// No package-level mutable state; tests build their own values.
type Config struct {
	ListenAddr string
	AdminToken string

	Upstream UpstreamConfig
	Storage  StorageConfig

	// DSN for the verification audit log. Empty disables the audit trail.
	DBDSN string
}

type UpstreamConfig struct {
	BaseURL string

	// Retry/backoff for every upstream call.
	MaxRetries     int
	BaseDelay      time.Duration
	AttemptTimeout time.Duration

	// Concurrent write limit for bulk verification actions.
	FanoutLimit int
}

type StorageConfig struct {
	Driver string // local|s3

	LocalDir string

	S3Region string
	S3Bucket string
	S3Prefix string
}

func Load() Config {
	return Config{
		ListenAddr: envOr("LISTEN_ADDR", ":8080"),
		AdminToken: os.Getenv("ADMIN_TOKEN"),
		DBDSN:      os.Getenv("DB_DSN"),
		Upstream: UpstreamConfig{
			BaseURL:        envOr("UPSTREAM_BASE_URL", "http://localhost:5000/api"),
			MaxRetries:     envInt("UPSTREAM_MAX_RETRIES", 3),
			BaseDelay:      time.Duration(envInt("UPSTREAM_BASE_DELAY_MS", 1000)) * time.Millisecond,
			AttemptTimeout: time.Duration(envInt("UPSTREAM_ATTEMPT_TIMEOUT_S", 30)) * time.Second,
			FanoutLimit:    envInt("FANOUT_LIMIT", 4),
		},
		Storage: StorageConfig{
			Driver:   envOr("STORAGE_DRIVER", "local"),
			LocalDir: envOr("LOCAL_BACKUP_DIR", "./storage/backups"),
			S3Region: os.Getenv("S3_REGION"),
			S3Bucket: os.Getenv("S3_BUCKET"),
			S3Prefix: envOr("S3_PREFIX", "backups"),
		},
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
