// ABOUTME: Input validation functions for API parameters
// ABOUTME: Rejects malformed share tokens before they reach the decoder

package services

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxShareTokenLength bounds the size of a share token accepted from a URL
const MaxShareTokenLength = 4096

// shareTokenPattern matches unpadded base64url text
var shareTokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// sanitizeForLog removes control characters from strings to prevent log injection
// when including user input in error messages
func sanitizeForLog(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1 // Remove control characters
		}
		return r
	}, s)
}

// ValidateShareToken validates that a share token is bounded, unpadded base64url text
func ValidateShareToken(token string) error {
	if token == "" {
		return fmt.Errorf("share token cannot be empty")
	}
	if len(token) > MaxShareTokenLength {
		return fmt.Errorf("share token exceeds %d characters", MaxShareTokenLength)
	}
	if !shareTokenPattern.MatchString(token) {
		return fmt.Errorf("invalid share token format: %s", sanitizeForLog(truncate(token, 64)))
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
