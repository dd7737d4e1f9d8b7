// ABOUTME: Fixed-window request quotas for the configurator API
// ABOUTME: Generation routes and the rest of the API each get their own limiter

package middleware

import (
	"encoding/json"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// sweepEvery is how many new windows are opened before stale ones are purged.
const sweepEvery = 100

// Quota is the result of charging one request against a key.
type Quota struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     time.Duration // time until the current window closes
}

type bucket struct {
	used    int
	resetAt time.Time
}

// RateLimiter hands out a fixed number of requests per key per window.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   int
	window  time.Duration
	opened  int
	now     func() time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per key per window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Take charges one request to key and reports the remaining quota.
func (rl *RateLimiter) Take(key string) Quota {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok || !now.Before(b.resetAt) {
		b = &bucket{resetAt: now.Add(rl.window)}
		rl.buckets[key] = b
		if rl.opened++; rl.opened >= sweepEvery {
			rl.purge(now)
			rl.opened = 0
		}
	}

	q := Quota{Limit: rl.limit, Reset: b.resetAt.Sub(now)}
	if b.used >= rl.limit {
		return q
	}
	b.used++
	q.Allowed = true
	q.Remaining = rl.limit - b.used
	return q
}

// Allow is Take reduced to a verdict and the wait before retrying.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	q := rl.Take(key)
	if q.Allowed {
		return true, 0
	}
	return false, q.Reset
}

// purge drops closed windows. Caller holds rl.mu.
func (rl *RateLimiter) purge(now time.Time) {
	for k, b := range rl.buckets {
		if !now.Before(b.resetAt) {
			delete(rl.buckets, k)
		}
	}
}

// ClientIP keys requests by the leftmost X-Forwarded-For address, falling back
// to RemoteAddr. The header is trusted, so deploy behind a proxy that sets it.
func ClientIP(r *http.Request) string {
	if first, _, _ := strings.Cut(r.Header.Get("X-Forwarded-For"), ","); first != "" {
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return "ip:" + ip.String()
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

// RateLimit charges each request to limiter under keyFunc(r). A nil limiter
// disables it, and requests with an empty key pass through uncounted.
func RateLimit(limiter *RateLimiter, keyFunc func(*http.Request) string) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		if limiter == nil || keyFunc == nil {
			return next
		}
		return func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next(w, r)
				return
			}

			q := limiter.Take(key)
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(q.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(q.Remaining))
			if q.Allowed {
				next(w, r)
				return
			}

			wait := max(int(math.Ceil(q.Reset.Seconds())), 1)
			slog.Warn("Rate limit exceeded", "key", key, "path", sanitizePath(r.URL.Path), "retry_after", wait)

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", strconv.Itoa(wait))
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(struct {
				Error      string `json:"error"`
				Code       int    `json:"code"`
				RetryAfter int    `json:"retry_after"`
			}{"Rate limit exceeded", http.StatusTooManyRequests, wait})
		}
	}
}
