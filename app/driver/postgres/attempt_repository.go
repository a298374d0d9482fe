package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"signup-service/app/port"
)

// AttemptRepository implements port.AttemptCounter over the signup attempts
// table. Records are created on first attempt in a window and never deleted.
type AttemptRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewAttemptRepository creates a new PostgreSQL attempt counter
func NewAttemptRepository(db DatabaseIface, logger *slog.Logger) port.AttemptCounter {
	return &AttemptRepository{
		db:     db,
		logger: logger.With("component", "attempt_repository"),
	}
}

// AdmitAndIncrement upserts the window counter, reads it and increments on
// admission. The decision is made on the read value, not atomically with the
// increment: two concurrent requests for the same key can both read the same
// count and both be admitted, so the cap can be exceeded by a small margin.
// The redis counter gives a hard cap where that matters.
func (r *AttemptRepository) AdmitAndIncrement(ctx context.Context, keyHash string, windowStart int64, max int) (bool, error) {
	insert := `
		INSERT INTO gestao_marcenaria__signup_attempts (key_hash, window_start, attempts)
		VALUES ($1, $2, 0)
		ON CONFLICT (key_hash, window_start) DO NOTHING`

	if _, err := r.db.Exec(ctx, insert, keyHash, windowStart); err != nil {
		r.logger.Error("failed to upsert attempt counter", "window_start", windowStart, "error", err)
		return false, fmt.Errorf("failed to upsert attempt counter: %w", err)
	}

	var attempts int
	query := `
		SELECT attempts FROM gestao_marcenaria__signup_attempts
		WHERE key_hash = $1 AND window_start = $2`

	if err := r.db.QueryRow(ctx, query, keyHash, windowStart).Scan(&attempts); err != nil {
		r.logger.Error("failed to read attempt counter", "window_start", windowStart, "error", err)
		return false, fmt.Errorf("failed to read attempt counter: %w", err)
	}

	if attempts >= max {
		return false, nil
	}

	update := `
		UPDATE gestao_marcenaria__signup_attempts
		SET attempts = attempts + 1
		WHERE key_hash = $1 AND window_start = $2`

	if _, err := r.db.Exec(ctx, update, keyHash, windowStart); err != nil {
		r.logger.Error("failed to increment attempt counter", "window_start", windowStart, "error", err)
		return false, fmt.Errorf("failed to increment attempt counter: %w", err)
	}

	return true, nil
}
