// ABOUTME: Middleware type and composition helper
// ABOUTME: Chain wraps a route handler so the first middleware runs first

package middleware

import "net/http"

// Middleware decorates a handler.
type Middleware = func(http.HandlerFunc) http.HandlerFunc

// Chain wraps h with mws. Chain(h, a, b) behaves like a(b(h)). Nil entries are skipped.
func Chain(h http.HandlerFunc, mws ...Middleware) http.HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] != nil {
			h = mws[i](h)
		}
	}
	return h
}
