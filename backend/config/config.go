// ABOUTME: Configuration loader for backend service
// ABOUTME: Loads settings from an optional .env file and environment variables with defaults

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when ENV_FILE is not set; a missing default file is ignored
const DefaultEnvFile = ".env"

type Config struct {
	// Server
	Port               string
	CORSAllowedOrigins []string // allowed CORS origins (empty = block all cross-origin)
	MetricsEnabled     bool     // Serve /metrics (default: true)

	// Catalog
	CatalogPath string   // merged catalog file, .json or .yaml (default: data/catalog.json)
	DDR5Sockets []string // sockets whose platform requires DDR5 (default: AM5)

	// Engine
	CacheTTL        int    // seconds a generated build set stays cached (default: 300)
	ClearancePolicy string // warn or research (default: warn)

	// Rate Limiting
	RateLimitEnabled  bool // Enable rate limiting (default: true)
	RateLimitGenerate int  // Requests per minute for build generation (default: 60)
	RateLimitDefault  int  // Requests per minute for all other endpoints (default: 300)
}

// Load reads the env file named by ENV_FILE, then builds the config from the environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),

		CatalogPath: getEnv("CATALOG_PATH", "data/catalog.json"),
		DDR5Sockets: getEnvStringList("DDR5_SOCKETS"),

		CacheTTL:        getEnvInt("CACHE_TTL", 300),
		ClearancePolicy: strings.ToLower(getEnv("CLEARANCE_POLICY", "warn")),

		RateLimitEnabled:  getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitGenerate: getEnvInt("RATE_LIMIT_GENERATE", 60),
		RateLimitDefault:  getEnvInt("RATE_LIMIT_DEFAULT", 300),
	}
	if len(cfg.DDR5Sockets) == 0 {
		cfg.DDR5Sockets = []string{"AM5"}
	}

	if cfg.ClearancePolicy != "warn" && cfg.ClearancePolicy != "research" {
		return nil, fmt.Errorf("CLEARANCE_POLICY must be warn or research, got %q", cfg.ClearancePolicy)
	}
	if cfg.CacheTTL < 0 {
		return nil, fmt.Errorf("CACHE_TTL must not be negative, got %d", cfg.CacheTTL)
	}

	// Validate rate limit values
	for _, rl := range []struct {
		name  string
		value int
	}{
		{"RATE_LIMIT_GENERATE", cfg.RateLimitGenerate},
		{"RATE_LIMIT_DEFAULT", cfg.RateLimitDefault},
	} {
		if rl.value < 1 || rl.value > 10000 {
			return nil, fmt.Errorf("%s must be between 1 and 10000, got %d", rl.name, rl.value)
		}
	}

	return cfg, nil
}

// loadEnvFile applies the env file without overriding variables already set.
// An explicitly named file must exist.
func loadEnvFile() error {
	path := os.Getenv("ENV_FILE")
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
