package ratelimit

import (
	"sync"
	"time"
)

// Config holds the fixed window tunables. These are the only recognized
// policy knobs: no sliding window, no token bucket, no burst allowance.
type Config struct {
	Window      time.Duration
	MaxRequests int
}

type bucket struct {
	count     int
	expiresAt time.Time
}

// Limiter is a process-scoped fixed window counter keyed by client
// identifier. State lives in memory only: it is lost on restart and not
// shared across instances, so the limit is best-effort. Stale identifiers
// are never evicted; the map grows over the process lifetime.
//
// A multi-instance deployment needs the same Admit contract backed by a
// shared external counter with expiry instead of this map.
type Limiter struct {
	mu      sync.Mutex
	cfg     Config
	now     func() time.Time
	buckets map[string]*bucket
}

// New returns a Limiter using the given configuration and clock.
// Pass time.Now outside of tests.
func New(cfg Config, now func() time.Time) *Limiter {
	if now == nil {
		now = time.Now
	}
	return &Limiter{
		cfg:     cfg,
		now:     now,
		buckets: make(map[string]*bucket),
	}
}

// Admit reports whether a request from the given identifier is allowed.
// The first request of a window (no record, or the record's window has
// expired) resets the counter to 1. Within a live window requests are
// admitted until MaxRequests is reached.
func (l *Limiter) Admit(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok || !now.Before(b.expiresAt) {
		l.buckets[key] = &bucket{count: 1, expiresAt: now.Add(l.cfg.Window)}
		return true
	}
	if b.count >= l.cfg.MaxRequests {
		return false
	}
	b.count++
	return true
}
