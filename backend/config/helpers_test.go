package config

import (
	"os"
	"testing"
)

// configKeys are every variable Load reads.
var configKeys = []string{
	"ENV_FILE",
	"PORT",
	"CORS_ALLOWED_ORIGINS",
	"METRICS_ENABLED",
	"CATALOG_PATH",
	"CACHE_TTL",
	"CLEARANCE_POLICY",
	"DDR5_SOCKETS",
	"RATE_LIMIT_ENABLED",
	"RATE_LIMIT_GENERATE",
	"RATE_LIMIT_DEFAULT",
}

// setEnv unsets every config variable for the duration of the test, then
// applies vars. Unset rather than blank so env files can still fill them.
func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "") // registers restore of the original value
		os.Unsetenv(key)
	}
	for key, value := range vars {
		t.Setenv(key, value)
	}
}
