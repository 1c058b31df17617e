package http

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Default per-client limits for endpoints that call the language model.
const (
	DefaultClientRPS   = 1.0
	DefaultClientBurst = 5
)

// clientIdleTimeout is how long an unused client limiter is retained.
const clientIdleTimeout = 10 * time.Minute

// ClientLimiter provides per-client rate limiting using token buckets.
// Each client key (usually the remote IP) gets its own limiter.
type ClientLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientEntry
	rps      float64
	burst    int
	now      func() time.Time
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewClientLimiter creates a ClientLimiter allowing rps requests per second
// per client with the given burst.
func NewClientLimiter(rps float64, burst int) *ClientLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ClientLimiter{
		limiters: make(map[string]*clientEntry),
		rps:      rps,
		burst:    burst,
		now:      time.Now,
	}
}

// Allow reports whether the client identified by key may make a request now.
func (l *ClientLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.limiters[key]
	if !ok {
		l.prune(now)
		entry = &clientEntry{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// Len returns the number of tracked clients.
func (l *ClientLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// prune drops limiters of clients idle longer than clientIdleTimeout.
func (l *ClientLimiter) prune(now time.Time) {
	for key, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > clientIdleTimeout {
			delete(l.limiters, key)
		}
	}
}
