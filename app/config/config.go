package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the signup service
type Config struct {
	// Server
	Port     string `env:"PORT" default:"9501"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// Database
	DatabaseHost     string `env:"DB_HOST" default:"signup-postgres"`
	DatabasePort     string `env:"DB_PORT" default:"5432"`
	DatabaseName     string `env:"DB_NAME" default:"marcenaria_db"`
	DatabaseUser     string `env:"DB_USER" default:"marcenaria_user"`
	DatabasePassword string `env:"DB_PASSWORD" required:"true"`
	DatabaseSSLMode  string `env:"DB_SSL_MODE" default:"require"`

	// Kratos
	KratosPublicURL string `env:"KRATOS_PUBLIC_URL" required:"true"`
	KratosAdminURL  string `env:"KRATOS_ADMIN_URL" required:"true"`

	// Signup
	SignupDisabled bool `env:"SIGNUP_DISABLED" default:"false"`

	// Rate limiting. The salt has no fallback on purpose: a shared default
	// would make hashed client identifiers identical across deployments.
	RateLimitWindowSeconds int64  `env:"SIGNUP_RATE_WINDOW_SECONDS" default:"600"`
	RateLimitMaxAttempts   int    `env:"SIGNUP_RATE_MAX_ATTEMPTS" default:"10"`
	RateLimitSalt          string `env:"SIGNUP_RATE_SALT" required:"true"`
	RateLimitBackend       string `env:"SIGNUP_RATE_BACKEND" default:"postgres"`

	// Redis (only read when the redis rate-limit backend is selected)
	RedisAddr     string `env:"REDIS_ADDR" default:"signup-redis:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" default:"0"`

	// CORS
	AllowedOrigins []string `env:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
}

// Rate limit backends
const (
	RateLimitBackendPostgres = "postgres"
	RateLimitBackendRedis    = "redis"
)

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9501")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseHost = getEnvOrDefault("DB_HOST", "signup-postgres")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "marcenaria_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "marcenaria_user")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")

	// Kratos configuration
	config.KratosPublicURL = os.Getenv("KRATOS_PUBLIC_URL")
	if config.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}

	config.KratosAdminURL = os.Getenv("KRATOS_ADMIN_URL")
	if config.KratosAdminURL == "" {
		return nil, fmt.Errorf("KRATOS_ADMIN_URL is required")
	}

	// Signup kill switch
	config.SignupDisabled = getBoolEnv("SIGNUP_DISABLED", false)

	// Rate limiting configuration
	var err error
	windowStr := getEnvOrDefault("SIGNUP_RATE_WINDOW_SECONDS", "600")
	config.RateLimitWindowSeconds, err = strconv.ParseInt(windowStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SIGNUP_RATE_WINDOW_SECONDS: %w", err)
	}

	maxStr := getEnvOrDefault("SIGNUP_RATE_MAX_ATTEMPTS", "10")
	maxAttempts, err := strconv.ParseInt(maxStr, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid SIGNUP_RATE_MAX_ATTEMPTS: %w", err)
	}
	config.RateLimitMaxAttempts = int(maxAttempts)

	config.RateLimitSalt = os.Getenv("SIGNUP_RATE_SALT")
	if config.RateLimitSalt == "" {
		return nil, fmt.Errorf("SIGNUP_RATE_SALT is required")
	}

	config.RateLimitBackend = getEnvOrDefault("SIGNUP_RATE_BACKEND", RateLimitBackendPostgres)

	// Redis configuration
	config.RedisAddr = getEnvOrDefault("REDIS_ADDR", "signup-redis:6379")
	config.RedisPassword = os.Getenv("REDIS_PASSWORD")
	redisDBStr := getEnvOrDefault("REDIS_DB", "0")
	redisDB, err := strconv.ParseInt(redisDBStr, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	config.RedisDB = int(redisDB)

	// CORS configuration
	config.AllowedOrigins = splitAndTrim(getEnvOrDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000"))

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate rate limit window (at least 1 second)
	if c.RateLimitWindowSeconds < 1 {
		return fmt.Errorf("rate limit window must be at least 1 second, got: %d", c.RateLimitWindowSeconds)
	}

	// Validate rate limit attempt cap
	if c.RateLimitMaxAttempts < 1 {
		return fmt.Errorf("rate limit max attempts must be at least 1, got: %d", c.RateLimitMaxAttempts)
	}

	// Validate rate limit backend
	validBackends := []string{RateLimitBackendPostgres, RateLimitBackendRedis}
	if !contains(validBackends, c.RateLimitBackend) {
		return fmt.Errorf("invalid rate limit backend: %s (must be one of: %s)", c.RateLimitBackend, strings.Join(validBackends, ", "))
	}

	if c.RateLimitBackend == RateLimitBackendRedis && c.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required when the redis rate limit backend is selected")
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
