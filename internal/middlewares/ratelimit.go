package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	apierrors "api/internal/errors"
	"api/internal/helpers"

	"golang.org/x/time/rate"
)

// Buckets idle longer than this are dropped on the next sweep. An evicted
// address simply starts over with a full bucket.
const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiters keeps one token bucket per client address and evicts idle
// entries so the map cannot grow for the lifetime of the process.
type clientLimiters struct {
	perMinute int
	now       func() time.Time

	mu      sync.Mutex
	entries map[string]*limiterEntry
}

func newClientLimiters(perMinute int) *clientLimiters {
	return &clientLimiters{
		perMinute: perMinute,
		now:       time.Now,
		entries:   make(map[string]*limiterEntry),
	}
}

func (c *clientLimiters) get(key string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	entry, ok := c.entries[key]
	if !ok {
		c.sweepLocked(now)
		entry = &limiterEntry{
			limiter: rate.NewLimiter(rate.Limit(float64(c.perMinute)/60.0), c.perMinute),
		}
		c.entries[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

func (c *clientLimiters) sweepLocked(now time.Time) {
	for key, entry := range c.entries {
		if now.Sub(entry.lastSeen) > limiterIdleTTL {
			delete(c.entries, key)
		}
	}
}

func (c *clientLimiters) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// LoginRateLimit limits each client address on the login route. Only login
// is limited; everything else is behind bearer auth already.
func LoginRateLimit(perMinute int) func(next http.Handler) http.Handler {
	limiters := newClientLimiters(perMinute)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			if !limiters.get(host).Allow() {
				helpers.RespondWithError(w, 429, []string{apierrors.ErrTooManyRequests})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
