// ABOUTME: Tests for the share commands
// ABOUTME: Round-trips generated builds through local and backend share tokens

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
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/sharecode"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetShareFlags(t *testing.T) {
	t.Helper()
	resetGenerateFlags(t)
	t.Cleanup(func() {
		shareFile, sharePreferences, shareRemote = "", nil, false
	})
}

// generateToFile writes generate --json output for a sample request
func generateToFile(t *testing.T, preference string) string {
	t.Helper()
	genBudget, genUseCase, genResolution = "1000", "gaming", "1440p"
	genCatalog, genPreference = sampleCatalogPath, preference
	jsonOutput = true

	var buf bytes.Buffer
	require.Equal(t, 0, runGenerate(context.Background(), &buf), buf.String())
	jsonOutput = false

	path := filepath.Join(t.TempDir(), "builds.json")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestShare_EncodeDecodeRoundTrip(t *testing.T) {
	resetShareFlags(t)
	shareFile = generateToFile(t, "")

	var enc bytes.Buffer
	require.Equal(t, 0, runShareEncode(&enc), enc.String())
	token := strings.TrimSpace(enc.String())
	require.NotEmpty(t, token)

	builds, err := sharecode.Decode(token)
	require.NoError(t, err)
	require.Len(t, builds, 3)
	assert.Equal(t, models.PreferenceBalanced, builds[1].Preference)
	assert.Equal(t, "975", builds[1].TotalPrice.String())

	var dec bytes.Buffer
	require.Equal(t, 0, runShareDecode(context.Background(), &dec, token), dec.String())
	out := dec.String()
	assert.Contains(t, out, "BALANCED  $975.00 of $1000.00")
	assert.Contains(t, out, "GPU")
}

func TestShare_EncodeSingleBuild(t *testing.T) {
	resetShareFlags(t)
	shareFile = generateToFile(t, "max")

	var enc bytes.Buffer
	require.Equal(t, 0, runShareEncode(&enc), enc.String())

	builds, err := sharecode.Decode(strings.TrimSpace(enc.String()))
	require.NoError(t, err)
	require.Len(t, builds, 1)
	assert.Equal(t, models.PreferenceMax, builds[0].Preference)
}

func TestReadBuilds_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "hello"},
		{"no builds", `{"status": "ok"}`},
		{"bad list", `[1, 2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readBuilds([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestShareDecode_InvalidTokens(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", " "},
		{"bad alphabet", "abc.def"},
		{"not msgpack", "AAAA"},
		{"too long", strings.Repeat("A", 9000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetShareFlags(t)
			var buf bytes.Buffer
			assert.Equal(t, 2, runShareDecode(context.Background(), &buf, tt.token))
			assert.Contains(t, buf.String(), "Error:")
		})
	}
}

func TestShareCreate_ViaAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req client.ShareRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []models.Preference{models.PreferenceValue, models.PreferenceMax}, req.Preferences)
		json.NewEncoder(w).Encode(client.ShareResponse{Token: "tok123", Path: "/api/v1/share/tok123"})
	}))
	defer server.Close()

	resetShareFlags(t)
	apiURL = server.URL
	genBudget = "900"
	sharePreferences = []string{"Value", "max"}

	var buf bytes.Buffer
	require.Equal(t, 0, runShareCreate(context.Background(), &buf), buf.String())
	assert.Equal(t, "tok123\n", buf.String())
}

func TestShareCreate_InvalidPreference(t *testing.T) {
	resetShareFlags(t)
	genBudget = "900"
	sharePreferences = []string{"cheap"}

	var buf bytes.Buffer
	assert.Equal(t, 2, runShareCreate(context.Background(), &buf))
}

func TestShareDecode_Remote(t *testing.T) {
	token, err := sharecode.EncodeShared([]sharecode.Build{{
		Preference: models.PreferenceValue,
		UseCase:    models.UseCaseGeneral,
		Resolution: models.Resolution1080,
	}})
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/share/"+token, r.URL.Path)
		builds, err := sharecode.Decode(token)
		require.NoError(t, err)
		json.NewEncoder(w).Encode(client.SharedBuilds{Builds: builds})
	}))
	defer server.Close()

	resetShareFlags(t)
	apiURL = server.URL
	shareRemote = true
	jsonOutput = true

	var buf bytes.Buffer
	require.Equal(t, 0, runShareDecode(context.Background(), &buf, token), buf.String())

	var shared client.SharedBuilds
	require.NoError(t, json.Unmarshal(buf.Bytes(), &shared))
	require.Len(t, shared.Builds, 1)
	assert.Equal(t, models.PreferenceValue, shared.Builds[0].Preference)
}
