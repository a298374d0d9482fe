package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"signup-service/app/domain"
	"signup-service/app/port"
)

// RateLimiter bounds signup attempts per hashed client identifier within a
// fixed window, backed by a persisted counter.
type RateLimiter struct {
	counter     port.AttemptCounter
	window      time.Duration
	maxAttempts int
	salt        string
	now         func() time.Time
	logger      *slog.Logger
}

// NewRateLimiter creates a rate limiter over the given counter store.
func NewRateLimiter(counter port.AttemptCounter, windowSeconds int64, maxAttempts int, salt string, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		counter:     counter,
		window:      time.Duration(windowSeconds) * time.Second,
		maxAttempts: maxAttempts,
		salt:        salt,
		now:         time.Now,
		logger:      logger.With("component", "rate_limiter"),
	}
}

// Allow counts one attempt for clientID and reports whether it is admitted.
// A counter store failure fails the request; the limiter never fails open.
func (l *RateLimiter) Allow(ctx context.Context, clientID string) error {
	if clientID == "" {
		clientID = domain.UnknownClient
	}

	windowStart := domain.WindowStart(l.now(), l.window)
	keyHash := domain.HashClientID(l.salt, clientID)

	admitted, err := l.counter.AdmitAndIncrement(ctx, keyHash, windowStart, l.maxAttempts)
	if err != nil {
		l.logger.Error("attempt counter failed",
			"key_hash", keyHash,
			"window_start", windowStart,
			"error", err)
		return fmt.Errorf("rate limit check failed: %w", err)
	}

	if !admitted {
		l.logger.Warn("signup attempt rejected by rate limit",
			"key_hash", keyHash,
			"window_start", windowStart,
			"max_attempts", l.maxAttempts)
		return domain.ErrRateLimited
	}

	return nil
}
