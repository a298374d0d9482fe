package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// UnknownClient is the sentinel identifier used when the request carries
// neither a forwarded-for nor a real-ip header. All such requests share one
// rate limit bucket.
const UnknownClient = "unknown"

// WindowStart quantizes a timestamp to the start of its fixed rate-limit
// window, in Unix seconds. Counting is fixed-window, not sliding: a burst
// split across a window boundary is not smoothed.
func WindowStart(now time.Time, window time.Duration) int64 {
	seconds := int64(window / time.Second)
	return now.Unix() / seconds * seconds
}

// HashClientID hashes a client identifier with the deployment salt so raw
// addresses are never persisted. Deterministic for a given (salt, id) pair.
func HashClientID(salt, clientID string) string {
	sum := sha256.Sum256([]byte(salt + ":" + clientID))
	return hex.EncodeToString(sum[:])
}

// RateLimitRecord is one persisted fixed-window counter. At most one record
// exists per (key hash, window start) pair; records are never deleted.
type RateLimitRecord struct {
	KeyHash     string `json:"key_hash"`
	WindowStart int64  `json:"window_start"`
	Attempts    int    `json:"attempts"`
}
