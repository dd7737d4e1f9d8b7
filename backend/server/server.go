// ABOUTME: HTTP server assembly shared by the binary and end-to-end tests
// ABOUTME: Wraps every route in logging, panic recovery, CORS, metrics, and rate limits

package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/catalog"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/config"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/handlers"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/metrics"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/middleware"
)

// Server is the assembled API
type Server struct {
	Handler *handlers.Handler
	Metrics *metrics.Recorder // nil when metrics are disabled
	Mux     *http.ServeMux
	store   *catalog.Store
}

// New wires the API for cfg on top of store
func New(cfg *config.Config, store *catalog.Store) *Server {
	s := &Server{store: store}

	var httpObserver middleware.HTTPObserver
	if cfg.MetricsEnabled {
		s.Metrics = metrics.NewRecorder()
		httpObserver = s.Metrics
		s.publishCatalog()
	}

	s.Handler = handlers.NewHandler(cfg, store, s.Metrics)

	var generateLimiter, defaultLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		generateLimiter = middleware.NewRateLimiter(cfg.RateLimitGenerate, time.Minute)
		defaultLimiter = middleware.NewRateLimiter(cfg.RateLimitDefault, time.Minute)
		slog.Info("Rate limiting enabled", "generate", cfg.RateLimitGenerate, "default", cfg.RateLimitDefault)
	}
	cors := middleware.CORS(cfg.CORSAllowedOrigins)

	s.Mux = http.NewServeMux()
	s.Handler.Register(s.Mux, func(route handlers.Route) http.HandlerFunc {
		limiter := defaultLimiter
		if route.Rate == handlers.RateGenerate {
			limiter = generateLimiter
		}
		return middleware.Chain(route.Handler,
			middleware.LogRequest,
			middleware.Recover,
			cors,
			middleware.Instrument(route.Pattern(), httpObserver),
			middleware.RateLimit(limiter, middleware.ClientIP),
		)
	})
	s.Mux.HandleFunc("OPTIONS /api/v1/", cors(func(w http.ResponseWriter, r *http.Request) {}))
	if s.Metrics != nil {
		s.Mux.Handle("GET /metrics", s.Metrics.Handler())
	}
	return s
}

// Reload re-reads the catalog and drops builds cached against the old one.
// On failure the previous catalog stays in effect.
func (s *Server) Reload() error {
	if err := s.store.Reload(); err != nil {
		return err
	}
	s.Handler.PurgeCache()
	s.publishCatalog()
	return nil
}

// Close releases background resources
func (s *Server) Close() {
	s.Handler.Close()
}

func (s *Server) publishCatalog() {
	if s.Metrics == nil {
		return
	}
	snap := s.store.Current()
	s.Metrics.SetCatalog(snap.Version, snap.Catalog.Counts())
}
