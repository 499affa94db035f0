package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Storage
	DBPath string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Chunking defaults
	ChunkTargetSize  int
	ChunkMinSize     int
	ChunkMaxSize     int
	ChunkOverlapSize int

	// Job state
	JobTTL time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("CONSOLE_API_KEY"),

		DBPath: envOr("DB_PATH", "campaign-console.db"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		ChunkTargetSize:  envInt("CHUNK_TARGET_SIZE", 1000),
		ChunkMinSize:     envInt("CHUNK_MIN_SIZE", 200),
		ChunkMaxSize:     envInt("CHUNK_MAX_SIZE", 1500),
		ChunkOverlapSize: envInt("CHUNK_OVERLAP_SIZE", 150),

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.ChunkTargetSize <= 0 {
		cfg.ChunkTargetSize = 1000
	}
	if cfg.ChunkMinSize <= 0 {
		cfg.ChunkMinSize = 200
	}
	if cfg.ChunkMaxSize <= cfg.ChunkMinSize {
		cfg.ChunkMaxSize = cfg.ChunkMinSize + cfg.ChunkTargetSize
	}
	if cfg.ChunkOverlapSize < 0 {
		cfg.ChunkOverlapSize = 150
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("CONSOLE_API_KEY is required")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
