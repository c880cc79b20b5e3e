package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	MongoDB    MongoDBConfig
	Redis      RedisConfig
	JWT        JWTConfig
	OTEL       OTELConfig
	S3         S3Config
	Validation ValidationConfig
	Log        LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port          string
	MaxBodySizeMB int64
}

// MongoDBConfig holds MongoDB connection configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string
	Password string
}

// JWTConfig holds the secret used to verify admin tokens
type JWTConfig struct {
	Secret string
}

// OTELConfig holds OpenTelemetry exporter configuration
type OTELConfig struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	Environment    string
	Endpoint       string
	InstanceID     string
	Token          string
}

// S3Config holds the S3-compatible store used to archive audit reports.
// Archiving is disabled when Endpoint is empty.
type S3Config struct {
	Endpoint string
	Region   string
	Bucket   string
}

// ValidationConfig tunes the validation service
type ValidationConfig struct {
	AuditConcurrency int
	IdempotencyTTL   time.Duration
	TemplateCacheTTL time.Duration
}

// LogConfig controls the zap logger
type LogConfig struct {
	Environment string // "development" switches to the console encoder
	Debug       bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := Read()

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Read loads configuration without validating it. Tools that only need the
// database settings use it directly.
// It attempts to load from .env file first, then falls back to system env vars
func Read() *Config {
	// Try to load .env file (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:          getEnv("PORT", "8080"),
			MaxBodySizeMB: getEnvAsInt64("MAX_BODY_SIZE_MB", 2),
		},
		MongoDB: MongoDBConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "p90x"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		OTEL: OTELConfig{
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "p90xcheck-api"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
			Environment:    getEnv("APP_ENV", "production"),
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			InstanceID:     getEnv("OTEL_INSTANCE_ID", ""),
			Token:          getEnv("OTEL_TOKEN", ""),
		},
		S3: S3Config{
			Endpoint: getEnv("S3_ENDPOINT", ""),
			Region:   getEnv("S3_REGION", "us-east-1"),
			Bucket:   getEnv("S3_BUCKET", "template-audits"),
		},
		Validation: ValidationConfig{
			AuditConcurrency: int(getEnvAsInt64("VALIDATION_AUDIT_CONCURRENCY", 4)),
			IdempotencyTTL:   getEnvAsDuration("IDEMPOTENCY_TTL", 10*time.Minute),
			TemplateCacheTTL: getEnvAsDuration("TEMPLATE_CACHE_TTL", 5*time.Minute),
		},
		Log: LogConfig{
			Environment: getEnv("APP_ENV", "production"),
			Debug:       getEnvAsBool("LOG_DEBUG", false),
		},
	}
}

// Validate checks that all required configuration is present
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.OTEL.Enabled && c.OTEL.Endpoint == "" {
		return fmt.Errorf("OTEL_EXPORTER_OTLP_ENDPOINT is required when OTEL_ENABLED is true")
	}
	if c.Validation.AuditConcurrency <= 0 {
		return fmt.Errorf("VALIDATION_AUDIT_CONCURRENCY must be positive")
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt64 retrieves an environment variable as int64 or returns a default value
func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration accepts Go duration strings such as "90s" or "5m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
