// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods, handlers, and rate limit class

package handlers

import "net/http"

// RateClass selects which request budget a route draws from
type RateClass string

const (
	// RateDefault covers cheap read endpoints
	RateDefault RateClass = "default"
	// RateGenerate covers endpoints that run the build pipeline
	RateGenerate RateClass = "generate"
)

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL pattern (e.g., "/api/v1/builds/{preference}")
	Handler http.HandlerFunc // Handler function
	Rate    RateClass        // Rate limit bucket
}

// Pattern returns the ServeMux pattern for the route
func (r Route) Pattern() string {
	return r.Method + " " + r.Path
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health & Catalog
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health, Rate: RateDefault},
		{Method: http.MethodGet, Path: "/api/v1/catalog", Handler: h.GetCatalog, Rate: RateDefault},
		{Method: http.MethodGet, Path: "/api/v1/catalog/issues", Handler: h.GetCatalogIssues, Rate: RateDefault},

		// Builds
		{Method: http.MethodPost, Path: "/api/v1/builds", Handler: h.GenerateBuilds, Rate: RateGenerate},
		{Method: http.MethodPost, Path: "/api/v1/builds/{preference}", Handler: h.GenerateBuild, Rate: RateGenerate},

		// Sharing
		{Method: http.MethodPost, Path: "/api/v1/share", Handler: h.CreateShare, Rate: RateGenerate},
		{Method: http.MethodGet, Path: "/api/v1/share/{token}", Handler: h.GetShare, Rate: RateDefault},

		// Documentation
		{Method: http.MethodGet, Path: "/api/v1/openapi.yaml", Handler: h.OpenAPISpec, Rate: RateDefault},
	}
}

// Register adds every route to mux. When wrap is set it builds the handler
// for each route, typically by applying middleware.
func (h *Handler) Register(mux *http.ServeMux, wrap func(Route) http.HandlerFunc) {
	for _, route := range h.Routes() {
		handler := route.Handler
		if wrap != nil {
			handler = wrap(route)
		}
		mux.HandleFunc(route.Pattern(), handler)
	}
}
