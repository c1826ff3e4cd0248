// Package timeouts provides centralized timeout values for handler
// operations. Handlers wrap request contexts with these values before
// calling into the stores, so a slow MongoDB cannot pin request goroutines
// indefinitely.
//
// Tiers:
//   - Ping: health checks and connectivity verification
//   - Medium: announcement operations (each request is one or two
//     document round-trips, including the teacher lookup)
//
// Values can be overridden at startup via ConfigureFromEnv.
package timeouts

import (
	"os"
	"sync"
	"time"
)

// Default timeout values (used unless overridden from the environment).
const (
	DefaultPing   = 2 * time.Second
	DefaultMedium = 10 * time.Second
)

var (
	mu     sync.RWMutex
	ping   = DefaultPing
	medium = DefaultMedium
)

// Ping returns the timeout for health checks and connectivity verification.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Medium returns the timeout for list queries and single-document writes.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// ConfigureFromEnv reads timeout overrides from TIMEOUT_PING and
// TIMEOUT_MEDIUM (Go duration strings, e.g. "500ms", "15s"). Unset or
// invalid values keep the defaults. It returns how many values were applied.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()
	applied := 0

	if v := os.Getenv("TIMEOUT_PING"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ping = d
			applied++
		}
	}
	if v := os.Getenv("TIMEOUT_MEDIUM"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			medium = d
			applied++
		}
	}

	return applied
}

// Reset restores all timeouts to their defaults. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	medium = DefaultMedium
}
