package config

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
)

// Config configures the wellness tracker server.
type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Session
	SessionSecret string
	SessionExpiry time.Duration

	// Filesystem
	StaticDir  string // served under /static/
	ChartDir   string // mood charts, must live under StaticDir
	JournalDir string

	// Housekeeping
	ChartRetention     time.Duration
	ChartPruneSchedule string // cron spec

	// Storage for memory box photos: "local" or "s3"
	StorageDriver string
	UploadDir     string // local driver only, must live under StaticDir

	// S3-compatible storage (STORAGE_DRIVER=s3)
	S3Region               string
	S3Bucket               string
	S3AccessKey            string
	S3SecretKey            string
	S3Endpoint             string
	S3UsePathStyle         bool // MinIO and most S3-compatible services
	S3PresignExpiryPrivate time.Duration

	// Rate limiting (optional Redis backend, in-memory otherwise)
	RedisURL string

	// Observability (optional)
	SentryDSN string
}

// ChatConfig configures the standalone chat proxy (cmd/chatbot).
type ChatConfig struct {
	AppEnv      string
	Port        string
	GeminiKey   string
	GeminiModel string
	ChatTimeout time.Duration
	RedisURL    string
	SentryDSN   string
}

func Load() *Config {
	loadDotEnv()

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "MomHive"),
		AppEnv:  envString("APP_ENV", "development"),
		Port:    envString("PORT", "5001"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/mom_hive.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Session
		SessionSecret: envRequired("SESSION_SECRET"),
		SessionExpiry: envDuration("SESSION_EXPIRY", 168*time.Hour), // 7 days

		// Filesystem
		StaticDir:  envString("STATIC_DIR", "static"),
		ChartDir:   envString("CHART_DIR", "static/charts"),
		JournalDir: envString("JOURNAL_DIR", "journals"),

		// Housekeeping
		ChartRetention:     envDuration("CHART_RETENTION", 24*time.Hour),
		ChartPruneSchedule: envString("CHART_PRUNE_SCHEDULE", "@hourly"),

		// Storage
		StorageDriver: envString("STORAGE_DRIVER", StorageDriverLocal),
		UploadDir:     envString("UPLOAD_DIR", "static/uploads"),

		S3Region:               envString("S3_REGION", ""),
		S3Bucket:               envString("S3_BUCKET", ""),
		S3AccessKey:            envString("S3_ACCESS_KEY", ""),
		S3SecretKey:            envString("S3_SECRET_KEY", ""),
		S3Endpoint:             envString("S3_ENDPOINT", ""),
		S3UsePathStyle:         envBool("S3_USE_PATH_STYLE", true),
		S3PresignExpiryPrivate: envDuration("S3_PRESIGN_EXPIRY_PRIVATE", 1*time.Hour),

		RedisURL:  envString("REDIS_URL", ""),
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	if cfg.StorageDriver == StorageDriverS3 {
		validateS3(cfg)
	}

	return cfg
}

func LoadChat() *ChatConfig {
	loadDotEnv()

	return &ChatConfig{
		AppEnv:      envString("APP_ENV", "development"),
		Port:        envString("CHAT_PORT", "5000"),
		GeminiKey:   envRequired("GEMINI_API_KEY"),
		GeminiModel: envString("GEMINI_MODEL", "gemini-2.0-flash"),
		ChatTimeout: envDuration("CHAT_TIMEOUT", 2*time.Minute),
		RedisURL:    envString("REDIS_URL", ""),
		SentryDSN:   envString("SENTRY_DSN", ""),
	}
}

func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}
}

// validateS3 stops startup when the s3 driver is selected without a bucket.
func validateS3(cfg *Config) {
	if cfg.S3Bucket == "" || cfg.S3Region == "" {
		slog.Error("STORAGE_DRIVER=s3 requires S3_BUCKET and S3_REGION",
			"hint", "set STORAGE_DRIVER=local to keep photos on disk")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// StaticURL maps a directory under StaticDir to the URL it is served at
func (c *Config) StaticURL(dir string) (string, error) {
	rel, err := filepath.Rel(c.StaticDir, dir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q is not inside STATIC_DIR %q", dir, c.StaticDir)
	}
	return path.Join("/static", filepath.ToSlash(rel)), nil
}

func (c *ChatConfig) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Sanitized returns a copy of the config with only public/safe fields.
// Safe to expose in ctx and templates.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:       c.AppName,
		AppEnv:        c.AppEnv,
		Port:          c.Port,
		StorageDriver: c.StorageDriver,
		S3Endpoint:    c.S3Endpoint, // Needed for CSP img-src
		S3Bucket:      c.S3Bucket,
		S3Region:      c.S3Region,
	}
}
