// ABOUTME: JSON error responses and panic recovery for middleware
// ABOUTME: Ensures middleware error responses match the API's JSON format

package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// writeJSONError writes an error response as JSON with the given status code.
// Matches the format used by handlers.writeError for consistency.
func writeJSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}{
		Error: message,
		Code:  code,
	})
}

// Recover turns a panicking handler into a 500 JSON response and logs the stack.
// http.ErrAbortHandler is re-raised so the server can abort the connection.
func Recover(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			slog.Error("Handler panic",
				"method", r.Method,
				"path", sanitizePath(r.URL.Path),
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		}()
		next(w, r)
	}
}
