package integration

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"signup-service/app/config"
)

const (
	// Test environment configuration
	TestPostgresHost     = "localhost"
	TestPostgresPort     = "5433"
	TestPostgresDB       = "marcenaria_test_db"
	TestPostgresUser     = "marcenaria_test_user"
	TestPostgresPassword = "test_password"
	TestPostgresSSLMode  = "disable"

	TestKratosPublicURL = "http://localhost:4433"
	TestKratosAdminURL  = "http://localhost:4434"

	TestServiceURL = "http://localhost:9501"
)

// TestConfig creates a configuration for integration tests
func TestConfig() *config.Config {
	return &config.Config{
		Port:     "9501",
		Host:     "0.0.0.0",
		LogLevel: "debug",

		DatabaseHost:     TestPostgresHost,
		DatabasePort:     TestPostgresPort,
		DatabaseName:     TestPostgresDB,
		DatabaseUser:     TestPostgresUser,
		DatabasePassword: TestPostgresPassword,
		DatabaseSSLMode:  TestPostgresSSLMode,

		KratosPublicURL: TestKratosPublicURL,
		KratosAdminURL:  TestKratosAdminURL,

		SignupDisabled: false,

		RateLimitWindowSeconds: 600,
		RateLimitMaxAttempts:   10,
		RateLimitSalt:          "integration-test-salt",
		RateLimitBackend:       config.RateLimitBackendPostgres,

		AllowedOrigins: []string{"http://localhost:3000"},
	}
}

// TestDatabaseConnection connects directly to the test database.
func TestDatabaseConnection() (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		TestPostgresUser, TestPostgresPassword,
		TestPostgresHost, TestPostgresPort,
		TestPostgresDB, TestPostgresSSLMode)

	return pgxpool.New(context.Background(), dsn)
}

// WaitForDatabase blocks until the test database answers pings or the
// deadline passes.
func WaitForDatabase(ctx context.Context) error {
	deadline := time.Now().Add(30 * time.Second)

	for time.Now().Before(deadline) {
		pool, err := TestDatabaseConnection()
		if err == nil {
			pingErr := pool.Ping(ctx)
			pool.Close()
			if pingErr == nil {
				return nil
			}
		}
		time.Sleep(time.Second)
	}

	return fmt.Errorf("test database not ready after 30s")
}
