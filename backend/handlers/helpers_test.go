package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/catalog"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/config"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/metrics"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
)

const sampleCatalogPath = "../../data/catalog.json"

func testConfig() *config.Config {
	return &config.Config{
		CacheTTL:        300,
		ClearancePolicy: "warn",
		DDR5Sockets:     []string{"AM5"},
	}
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	store, err := catalog.Open(sampleCatalogPath)
	if err != nil {
		t.Fatalf("catalog.Open() error = %v", err)
	}
	h := NewHandler(testConfig(), store, metrics.NewRecorder())
	t.Cleanup(h.Close)
	return h
}

// newHandlerWithCatalog serves a catalog built in the test
func newHandlerWithCatalog(t *testing.T, c *models.Catalog) *Handler {
	t.Helper()
	snap, err := catalog.NewSnapshot(c, "test")
	if err != nil {
		t.Fatalf("NewSnapshot() error = %v", err)
	}
	h := NewHandler(testConfig(), catalog.NewStore(snap), nil)
	t.Cleanup(h.Close)
	return h
}

func newMux(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()
	h.Register(mux, nil)
	return mux
}

func serve(t *testing.T, h *Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	newMux(h).ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return v
}

func newJSONRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func newRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
