// ABOUTME: Test helpers for e2e tests
// ABOUTME: Boots the assembled API from environment config against the sample catalog

package e2e

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/catalog"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/config"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/server"
)

const sampleCatalogPath = "../../data/catalog.json"

// startServer loads config from the environment plus extra vars and serves
// the API on an httptest server closed at cleanup.
//
// Example:
//
//	func TestSomething(t *testing.T) {
//	    ts, _ := startServer(t, map[string]string{
//	        "CORS_ALLOWED_ORIGINS": "https://example.com",
//	    })
//	}
func startServer(t *testing.T, extra map[string]string) (*httptest.Server, *server.Server) {
	t.Helper()

	t.Setenv("ENV_FILE", "")
	t.Setenv("CATALOG_PATH", sampleCatalogPath)
	t.Setenv("LOG_LEVEL", "error")
	for key, value := range extra {
		t.Setenv(key, value)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	store, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		t.Fatalf("catalog.Open() error = %v", err)
	}

	s := server.New(cfg, store)
	ts := httptest.NewServer(s.Mux)
	t.Cleanup(func() {
		ts.Close()
		s.Close()
	})
	return ts, s
}

func do(t *testing.T, ts *httptest.Server, method, path, body string, headers map[string]string) (*http.Response, string) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.URL+path, r)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp, string(data)
}
