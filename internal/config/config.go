package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppEnv string

	// Database (empty path: in-memory, nothing survives the process)
	DBPath string

	// Observability (optional)
	SentryDSN string

	// Backups (S3-compatible: MinIO, AWS S3, Cloudflare R2, etc.)
	BackupS3Region      string
	BackupS3Bucket      string
	BackupS3AccessKey   string
	BackupS3SecretKey   string
	BackupS3Endpoint    string        // Optional: for non-AWS providers
	BackupPresignExpiry time.Duration // Lifetime of download links - default: 1 hour
	BackupPrefix        string

	// Export
	ExportLookbackDays int

	// EnvFile reports whether a .env file was loaded
	EnvFile bool
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()

	return &Config{
		EnvFile: err == nil,


		AppEnv: envString("APP_ENV", "development"),

		DBPath: envString("DB_PATH", "./data/brewlog.db"),

		SentryDSN: envString("SENTRY_DSN", ""),

		BackupS3Region:      envString("BACKUP_S3_REGION", "us-east-1"),
		BackupS3Bucket:      envString("BACKUP_S3_BUCKET", ""),
		BackupS3AccessKey:   envString("BACKUP_S3_ACCESS_KEY", ""),
		BackupS3SecretKey:   envString("BACKUP_S3_SECRET_KEY", ""),
		BackupS3Endpoint:    envString("BACKUP_S3_ENDPOINT", ""),
		BackupPresignExpiry: envDuration("BACKUP_S3_PRESIGN_EXPIRY", 1*time.Hour),
		BackupPrefix:        envString("BACKUP_PREFIX", "brewlog"),

		ExportLookbackDays: envInt("EXPORT_LOOKBACK_DAYS", 365),
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
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

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// BackupEnabled reports whether a backup bucket is configured.
func (c *Config) BackupEnabled() bool {
	return c.BackupS3Bucket != ""
}
