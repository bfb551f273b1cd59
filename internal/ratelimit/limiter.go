// Package ratelimit implements a fixed-window request limiter keyed by
// client address, backed by an injectable counter store.
package ratelimit

import (
	"time"
)

const (
	defaultWindow         = 60 * time.Second
	defaultMaxRequests    = 10
	defaultSweepThreshold = 10000
)

// Result is the limiter's decision for a single request.
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter applies a fixed-window counter per key. The store is injected so
// tests can use a plain map and production can swap in a shared backend.
type Limiter struct {
	store          Store
	window         time.Duration
	maxRequests    int
	sweepThreshold int
	now            func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

func WithWindow(d time.Duration) Option {
	return func(l *Limiter) { l.window = d }
}

func WithMaxRequests(n int) Option {
	return func(l *Limiter) { l.maxRequests = n }
}

func WithSweepThreshold(n int) Option {
	return func(l *Limiter) { l.sweepThreshold = n }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

func NewLimiter(store Store, opts ...Option) *Limiter {
	l := &Limiter{
		store:          store,
		window:         defaultWindow,
		maxRequests:    defaultMaxRequests,
		sweepThreshold: defaultSweepThreshold,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow records a request for key and decides whether it may proceed. When
// denied, RetryAfter is the time remaining in the key's current window.
// Expired entries are swept once the store grows past the threshold, which
// bounds memory under address churn.
func (l *Limiter) Allow(key string) Result {
	now := l.now()

	if l.store.Len() > l.sweepThreshold {
		l.store.Sweep(now)
	}

	entry := l.store.Increment(key, now, l.window)
	resetIn := entry.ResetAt.Sub(now)

	if entry.Count > l.maxRequests {
		return Result{Allowed: false, Remaining: 0, RetryAfter: resetIn}
	}

	return Result{
		Allowed:    true,
		Remaining:  l.maxRequests - entry.Count,
		RetryAfter: resetIn,
	}
}

// MaxRequests exposes the per-window limit for response headers.
func (l *Limiter) MaxRequests() int {
	return l.maxRequests
}
