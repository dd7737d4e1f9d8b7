// ABOUTME: Request instrumentation middleware
// ABOUTME: Reports route, status, and latency to an HTTP observer

package middleware

import (
	"net/http"
	"time"
)

// HTTPObserver records served requests
type HTTPObserver interface {
	ObserveHTTP(route string, status int, elapsed time.Duration)
}

// Instrument reports every request to obs under the given route label.
// A nil observer makes the middleware a no-op.
func Instrument(route string, obs HTTPObserver) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		if obs == nil {
			return next
		}
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next(wrapped, r)
			obs.ObserveHTTP(route, wrapped.statusCode, time.Since(start))
		}
	}
}
