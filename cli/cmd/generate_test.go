// ABOUTME: Tests for the generate command
// ABOUTME: Covers local catalog generation, API generation, and exit codes

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBuildSetRequest(t *testing.T) {
	tests := []struct {
		name       string
		budget     string
		useCase    string
		resolution string
		wantErr    bool
	}{
		{name: "plain", budget: "1000", useCase: "gaming", resolution: "1440p"},
		{name: "dollar sign and case", budget: "$850.50", useCase: "Roblox", resolution: "1080"},
		{name: "not a number", budget: "lots", useCase: "gaming", resolution: "1080p", wantErr: true},
		{name: "negative budget", budget: "-5", useCase: "gaming", resolution: "1080p", wantErr: true},
		{name: "unknown use case", budget: "1000", useCase: "mining", resolution: "1080p", wantErr: true},
		{name: "unsupported resolution", budget: "1000", useCase: "gaming", resolution: "4k", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := parseBuildSetRequest(tt.budget, tt.useCase, tt.resolution)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, models.ErrInvalidRequest)
				return
			}
			require.NoError(t, err)
			assert.False(t, req.Budget.IsNegative())
			assert.True(t, req.Resolution.Valid())
		})
	}
}

func TestRunGenerate_LocalSet(t *testing.T) {
	resetGenerateFlags(t)
	genBudget, genUseCase, genResolution = "1000", "gaming", "1440p"
	genCatalog = sampleCatalogPath

	var buf bytes.Buffer
	exitCode := runGenerate(context.Background(), &buf)

	require.Equal(t, 0, exitCode, buf.String())
	out := buf.String()
	for _, want := range []string{"VALUE", "BALANCED", "MAX", "$975.00 of $1000.00", "Why:"} {
		assert.Contains(t, out, want)
	}
}

func TestRunGenerate_LocalJSON(t *testing.T) {
	resetGenerateFlags(t)
	genBudget, genUseCase, genResolution = "1000", "gaming", "1440p"
	genCatalog = sampleCatalogPath
	jsonOutput = true

	var buf bytes.Buffer
	require.Equal(t, 0, runGenerate(context.Background(), &buf), buf.String())

	var set models.BuildSet
	require.NoError(t, json.Unmarshal(buf.Bytes(), &set))
	require.Len(t, set.Builds, 3)
	assert.NotEmpty(t, set.CatalogVersion)
	assert.Equal(t, "gpu-rx6600", set.Builds[0].Parts.GPU.ID)
	assert.True(t, set.Builds[1].TotalPrice.Equal(decimal.NewFromInt(975)))
}

func TestRunGenerate_LocalSinglePreference(t *testing.T) {
	resetGenerateFlags(t)
	genBudget, genUseCase, genResolution = "1000", "gaming", "1440p"
	genCatalog = sampleCatalogPath
	genPreference = "balanced"
	jsonOutput = true

	var buf bytes.Buffer
	require.Equal(t, 0, runGenerate(context.Background(), &buf), buf.String())

	var build models.Build
	require.NoError(t, json.Unmarshal(buf.Bytes(), &build))
	assert.Equal(t, models.PreferenceBalanced, build.Preference)
	assert.Equal(t, 525, build.EstimatedWattage)
}

func TestRunGenerate_OverBudgetWarning(t *testing.T) {
	resetGenerateFlags(t)
	genBudget, genUseCase, genResolution = "400", "gaming", "1080p"
	genCatalog = sampleCatalogPath

	var buf bytes.Buffer
	require.Equal(t, 0, runGenerate(context.Background(), &buf), buf.String())
	assert.Contains(t, buf.String(), "Build exceeds budget by $")
}

func TestRunGenerate_ExitCodes(t *testing.T) {
	emptyGPUs := filepath.Join(t.TempDir(), "catalog.json")
	data, err := os.ReadFile(sampleCatalogPath)
	require.NoError(t, err)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	raw["gpu"] = json.RawMessage("[]")
	out, err := json.Marshal(raw)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(emptyGPUs, out, 0o644))

	tests := []struct {
		name       string
		budget     string
		preference string
		catalog    string
		clearance  string
		want       int
		message    string
	}{
		{name: "invalid budget", budget: "-1", catalog: sampleCatalogPath, want: 2, message: "budget"},
		{name: "unknown preference", budget: "1000", preference: "cheap", catalog: sampleCatalogPath, want: 2, message: "preference"},
		{name: "missing catalog", budget: "1000", catalog: "does-not-exist.json", want: 2, message: "Error:"},
		{name: "unknown clearance policy", budget: "1000", catalog: sampleCatalogPath, clearance: "ignore", want: 2, message: "clearance"},
		{name: "empty gpu category", budget: "1000", catalog: emptyGPUs, want: 1, message: "gpu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGenerateFlags(t)
			genBudget, genUseCase, genResolution = tt.budget, "gaming", "1080p"
			genPreference, genCatalog = tt.preference, tt.catalog
			genClearance = "warn"
			if tt.clearance != "" {
				genClearance = tt.clearance
			}

			var buf bytes.Buffer
			got := runGenerate(context.Background(), &buf)
			assert.Equal(t, tt.want, got, buf.String())
			assert.Contains(t, buf.String(), tt.message)
		})
	}
}

func TestRunGenerate_ViaAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/builds" {
			http.NotFound(w, r)
			return
		}
		var req models.BuildSetRequest
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(models.BuildSet{
			Request:        req,
			CatalogVersion: "remote1",
			Builds:         []models.Build{{Preference: models.PreferenceValue, Budget: req.Budget, TotalPrice: decimal.NewFromInt(700)}},
		})
	}))
	defer server.Close()

	resetGenerateFlags(t)
	apiURL = server.URL
	genBudget, genUseCase, genResolution = "750", "minecraft", "1080p"

	var buf bytes.Buffer
	require.Equal(t, 0, runGenerate(context.Background(), &buf), buf.String())
	assert.Contains(t, buf.String(), "Catalog remote1")
	assert.Contains(t, buf.String(), "$700.00 of $750.00")
}

func TestRunGenerate_APIExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{"error": "No compatible build", "code": 422, "category": "case"})
	}))
	defer server.Close()

	resetGenerateFlags(t)
	apiURL = server.URL
	genBudget = "1000"

	var buf bytes.Buffer
	assert.Equal(t, 1, runGenerate(context.Background(), &buf))
	assert.True(t, strings.Contains(buf.String(), "No compatible build"))
}
