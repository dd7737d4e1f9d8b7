// ABOUTME: Tests for route table definitions
// ABOUTME: Verifies all routes have required fields and no duplicates

package handlers

import (
	"net/http"
	"strings"
	"testing"
)

func TestRoutes_AllRoutesHaveRequiredFields(t *testing.T) {
	h := NewHandler(nil, nil, nil)
	t.Cleanup(h.Close)
	routes := h.Routes()

	if len(routes) == 0 {
		t.Fatal("Routes() returned empty slice")
	}

	for i, route := range routes {
		if route.Method == "" {
			t.Errorf("Route %d: Method is empty", i)
		}
		if route.Path == "" {
			t.Errorf("Route %d: Path is empty", i)
		}
		if route.Handler == nil {
			t.Errorf("Route %d: Handler is nil", i)
		}
		if route.Rate != RateDefault && route.Rate != RateGenerate {
			t.Errorf("Route %d: unknown rate class %q", i, route.Rate)
		}
		if !strings.HasPrefix(route.Path, "/api/v1/") {
			t.Errorf("Route %d: Path %q must start with /api/v1/", i, route.Path)
		}
	}
}

func TestRoutes_NoDuplicatePaths(t *testing.T) {
	h := NewHandler(nil, nil, nil)
	t.Cleanup(h.Close)

	seen := make(map[string]bool)
	for _, route := range h.Routes() {
		key := route.Pattern()
		if seen[key] {
			t.Errorf("Duplicate route: %s", key)
		}
		seen[key] = true
	}
}

func TestRoutes_ExpectedEndpoints(t *testing.T) {
	h := NewHandler(nil, nil, nil)
	t.Cleanup(h.Close)

	expected := map[string]bool{
		"GET /api/v1/health":               false,
		"GET /api/v1/catalog":              false,
		"GET /api/v1/catalog/issues":       false,
		"POST /api/v1/builds":              false,
		"POST /api/v1/builds/{preference}": false,
		"POST /api/v1/share":               false,
		"GET /api/v1/share/{token}":        false,
		"GET /api/v1/openapi.yaml":         false,
	}

	for _, route := range h.Routes() {
		if _, ok := expected[route.Pattern()]; ok {
			expected[route.Pattern()] = true
		}
	}

	for key, found := range expected {
		if !found {
			t.Errorf("Missing expected route: %s", key)
		}
	}
}

func TestRoutes_GenerationRoutesUseGenerateBudget(t *testing.T) {
	h := NewHandler(nil, nil, nil)
	t.Cleanup(h.Close)

	for _, route := range h.Routes() {
		generates := route.Method == http.MethodPost
		if generates && route.Rate != RateGenerate {
			t.Errorf("%s: rate = %q, want %q", route.Pattern(), route.Rate, RateGenerate)
		}
		if !generates && route.Rate != RateDefault {
			t.Errorf("%s: rate = %q, want %q", route.Pattern(), route.Rate, RateDefault)
		}
	}
}

func TestRoutes_RegisterOnServeMux(t *testing.T) {
	h := NewHandler(nil, nil, nil)
	t.Cleanup(h.Close)

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("registering routes panicked: %v", r)
		}
	}()
	newMux(h)
}
