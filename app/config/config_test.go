package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signup-service/app/config"
)

func TestConfig_Load(t *testing.T) {
	baseEnv := map[string]string{
		"DB_PASSWORD":       "test_password",
		"KRATOS_PUBLIC_URL": "http://kratos-public:4433",
		"KRATOS_ADMIN_URL":  "http://kratos-admin:4434",
		"SIGNUP_RATE_SALT":  "test-salt",
	}

	tests := []struct {
		name    string
		envVars map[string]string
		want    *config.Config
		wantErr bool
	}{
		{
			name:    "default configuration",
			envVars: baseEnv,
			want: &config.Config{
				Port:                   "9501",
				Host:                   "0.0.0.0",
				LogLevel:               "info",
				DatabaseHost:           "signup-postgres",
				DatabasePort:           "5432",
				DatabaseName:           "marcenaria_db",
				DatabaseUser:           "marcenaria_user",
				DatabasePassword:       "test_password",
				DatabaseSSLMode:        "require",
				KratosPublicURL:        "http://kratos-public:4433",
				KratosAdminURL:         "http://kratos-admin:4434",
				SignupDisabled:         false,
				RateLimitWindowSeconds: 600,
				RateLimitMaxAttempts:   10,
				RateLimitSalt:          "test-salt",
				RateLimitBackend:       config.RateLimitBackendPostgres,
				RedisAddr:              "signup-redis:6379",
				AllowedOrigins:         []string{"http://localhost:3000"},
			},
			wantErr: false,
		},
		{
			name: "custom rate limit configuration",
			envVars: mergeEnv(baseEnv, map[string]string{
				"SIGNUP_DISABLED":            "true",
				"SIGNUP_RATE_WINDOW_SECONDS": "120",
				"SIGNUP_RATE_MAX_ATTEMPTS":   "3",
				"SIGNUP_RATE_BACKEND":        "redis",
				"REDIS_ADDR":                 "redis.local:6380",
				"CORS_ALLOW_ORIGINS":         "https://app.example.com, https://admin.example.com",
			}),
			want: &config.Config{
				Port:                   "9501",
				Host:                   "0.0.0.0",
				LogLevel:               "info",
				DatabaseHost:           "signup-postgres",
				DatabasePort:           "5432",
				DatabaseName:           "marcenaria_db",
				DatabaseUser:           "marcenaria_user",
				DatabasePassword:       "test_password",
				DatabaseSSLMode:        "require",
				KratosPublicURL:        "http://kratos-public:4433",
				KratosAdminURL:         "http://kratos-admin:4434",
				SignupDisabled:         true,
				RateLimitWindowSeconds: 120,
				RateLimitMaxAttempts:   3,
				RateLimitSalt:          "test-salt",
				RateLimitBackend:       config.RateLimitBackendRedis,
				RedisAddr:              "redis.local:6380",
				AllowedOrigins:         []string{"https://app.example.com", "https://admin.example.com"},
			},
			wantErr: false,
		},
		{
			name:    "missing salt fails startup",
			envVars: withoutKey(baseEnv, "SIGNUP_RATE_SALT"),
			wantErr: true,
		},
		{
			name:    "missing database password",
			envVars: withoutKey(baseEnv, "DB_PASSWORD"),
			wantErr: true,
		},
		{
			name:    "missing kratos admin URL",
			envVars: withoutKey(baseEnv, "KRATOS_ADMIN_URL"),
			wantErr: true,
		},
		{
			name: "invalid window",
			envVars: mergeEnv(baseEnv, map[string]string{
				"SIGNUP_RATE_WINDOW_SECONDS": "0",
			}),
			wantErr: true,
		},
		{
			name: "invalid max attempts",
			envVars: mergeEnv(baseEnv, map[string]string{
				"SIGNUP_RATE_MAX_ATTEMPTS": "-1",
			}),
			wantErr: true,
		},
		{
			name: "invalid backend",
			envVars: mergeEnv(baseEnv, map[string]string{
				"SIGNUP_RATE_BACKEND": "memcached",
			}),
			wantErr: true,
		},
		{
			name: "invalid log level",
			envVars: mergeEnv(baseEnv, map[string]string{
				"LOG_LEVEL": "verbose",
			}),
			wantErr: true,
		},
		{
			name: "invalid port",
			envVars: mergeEnv(baseEnv, map[string]string{
				"PORT": "70000",
			}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			got, err := config.Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func mergeEnv(base, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

func withoutKey(base map[string]string, key string) map[string]string {
	result := make(map[string]string, len(base))
	for k, v := range base {
		if k != key {
			result[k] = v
		}
	}
	return result
}
