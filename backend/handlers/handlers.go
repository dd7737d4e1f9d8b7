// ABOUTME: HTTP handlers for the build configurator API
// ABOUTME: Holds shared dependencies and the JSON response helpers

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/cache"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/catalog"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/config"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/metrics"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/services"
	"golang.org/x/sync/singleflight"
)

// maxRequestBodySize caps JSON request bodies
const maxRequestBodySize = 64 << 10

// defaultCacheTTL applies when no config is supplied
const defaultCacheTTL = 5 * time.Minute

// ErrorResponse is the JSON body of every error
type ErrorResponse struct {
	Error      string          `json:"error"`
	Details    string          `json:"details,omitempty"`
	Code       int             `json:"code"`
	Category   models.Category `json:"category,omitempty"`
	Constraint string          `json:"constraint,omitempty"`
}

type Handler struct {
	cfg       *config.Config
	store     *catalog.Store
	generator *services.Generator
	metrics   *metrics.Recorder
	sets      *cache.Cache[*models.BuildSet]
	builds    *cache.Cache[*models.Build]
	group     singleflight.Group
}

// NewHandler wires the handlers to a catalog store. cfg, store and rec may be nil;
// a nil store answers catalog-backed endpoints with 503.
func NewHandler(cfg *config.Config, store *catalog.Store, rec *metrics.Recorder) *Handler {
	ttl := defaultCacheTTL
	opts := services.Options{}
	if cfg != nil {
		ttl = time.Duration(cfg.CacheTTL) * time.Second
		opts.DDR5Sockets = cfg.DDR5Sockets
		if policy, err := services.ParseClearancePolicy(cfg.ClearancePolicy); err == nil {
			opts.ClearancePolicy = policy
		}
	}
	if rec != nil {
		opts.Observer = rec
	}

	return &Handler{
		cfg:       cfg,
		store:     store,
		generator: services.NewGenerator(opts),
		metrics:   rec,
		sets:      cache.New[*models.BuildSet](ttl),
		builds:    cache.New[*models.Build](ttl),
	}
}

// Close stops the cache cleanup loops
func (h *Handler) Close() {
	h.sets.Stop()
	h.builds.Stop()
}

// PurgeCache drops every memoized build, used after a catalog reload
func (h *Handler) PurgeCache() {
	h.sets.Purge()
	h.builds.Purge()
}

// snapshot returns the catalog in effect, or nil when none is loaded
func (h *Handler) snapshot() *catalog.Snapshot {
	if h.store == nil {
		return nil
	}
	return h.store.Current()
}

// buildSet serves a build set from cache, collapsing identical concurrent requests
func (h *Handler) buildSet(ctx context.Context, snap *catalog.Snapshot, req models.BuildSetRequest) (*models.BuildSet, error) {
	key := snap.Version + "|" + req.Key()
	if set, ok := h.sets.Get(key); ok {
		h.cacheHit()
		return set, nil
	}
	h.cacheMiss()

	// Shared callers must not inherit the first caller's cancellation.
	detached := context.WithoutCancel(ctx)
	v, err, shared := h.group.Do("set|"+key, func() (any, error) {
		set, err := h.generator.GenerateSet(detached, snap.Catalog, req)
		if err != nil {
			return nil, err
		}
		set.CatalogVersion = snap.Version
		if h.sets.TTL() > 0 {
			h.sets.Set(key, set)
		}
		return set, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		slog.Debug("Build set shared across concurrent requests", "key", key)
	}
	return v.(*models.BuildSet), nil
}

// build serves one preference variant the same way buildSet does
func (h *Handler) build(snap *catalog.Snapshot, req models.BuildRequest) (*models.Build, error) {
	key := snap.Version + "|" + req.SetRequest().Key() + "|" + string(req.Preference)
	if b, ok := h.builds.Get(key); ok {
		h.cacheHit()
		return b, nil
	}
	h.cacheMiss()

	v, err, _ := h.group.Do("build|"+key, func() (any, error) {
		b, err := h.generator.Generate(snap.Catalog, req)
		if err != nil {
			return nil, err
		}
		if h.builds.TTL() > 0 {
			h.builds.Set(key, b)
		}
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Build), nil
}

func (h *Handler) cacheHit() {
	if h.metrics != nil {
		h.metrics.CacheHit()
	}
}

func (h *Handler) cacheMiss() {
	if h.metrics != nil {
		h.metrics.CacheMiss()
	}
}

// decodeJSON reads a size-limited JSON body into dst, writing the error response on failure
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeError(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		h.writeErrorDetails(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// writeGenerationError maps engine errors to status codes
func (h *Handler) writeGenerationError(w http.ResponseWriter, err error) {
	var exhausted *models.CategoryExhaustedError
	switch {
	case errors.As(err, &exhausted):
		h.writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:      "No build satisfies the catalog constraints",
			Details:    err.Error(),
			Code:       http.StatusUnprocessableEntity,
			Category:   exhausted.Category,
			Constraint: exhausted.Constraint,
		})
	case errors.Is(err, models.ErrInvalidRequest):
		h.writeErrorDetails(w, "Invalid build request", err.Error(), http.StatusBadRequest)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.writeError(w, "Request cancelled", http.StatusServiceUnavailable)
	default:
		slog.Error("Build generation failed", "error", err)
		h.writeError(w, "Build generation failed", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeJSON(w, code, ErrorResponse{Error: message, Code: code})
}

func (h *Handler) writeErrorDetails(w http.ResponseWriter, message, details string, code int) {
	h.writeJSON(w, code, ErrorResponse{Error: message, Details: details, Code: code})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
