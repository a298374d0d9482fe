package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"signup-service/app/config"
	"signup-service/app/port"
)

// NewClient creates a redis client from service configuration
func NewClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// AttemptCounter implements port.AttemptCounter over redis. Unlike the
// postgres counter, INCR makes the count-and-decide pair atomic, so the
// attempt cap is a hard limit even under concurrent requests for the same
// key. Keys expire instead of accumulating.
type AttemptCounter struct {
	client *redis.Client
	window time.Duration
	logger *slog.Logger
}

// NewAttemptCounter creates a redis-backed attempt counter
func NewAttemptCounter(client *redis.Client, windowSeconds int64, logger *slog.Logger) port.AttemptCounter {
	return &AttemptCounter{
		client: client,
		window: time.Duration(windowSeconds) * time.Second,
		logger: logger.With("component", "redis_attempt_counter"),
	}
}

// AdmitAndIncrement atomically counts one attempt for (keyHash, windowStart)
// and reports whether it is within max.
func (c *AttemptCounter) AdmitAndIncrement(ctx context.Context, keyHash string, windowStart int64, max int) (bool, error) {
	key := counterKey(keyHash, windowStart)

	count, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		c.logger.Error("failed to increment attempt counter", "window_start", windowStart, "error", err)
		return false, fmt.Errorf("failed to increment attempt counter: %w", err)
	}

	if count == 1 {
		// First attempt in this window. The key only matters until the
		// window ends; twice the window length leaves slack for clock skew.
		if err := c.client.Expire(ctx, key, 2*c.window).Err(); err != nil {
			c.logger.Error("failed to set counter expiry", "window_start", windowStart, "error", err)
			return false, fmt.Errorf("failed to set counter expiry: %w", err)
		}
	}

	return count <= int64(max), nil
}

// HealthCheck checks if redis is reachable
func (c *AttemptCounter) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return c.client.Ping(ctx).Err()
}

func counterKey(keyHash string, windowStart int64) string {
	return fmt.Sprintf("signup:attempts:%s:%d", keyHash, windowStart)
}
