// ABOUTME: HTTP handlers for share tokens
// ABOUTME: Encodes a generated build set into a token and decodes tokens back

package handlers

import (
	"errors"
	"net/http"
	"slices"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/services"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/sharecode"
)

// ShareRequest names the build set to share, optionally narrowed to some preferences
type ShareRequest struct {
	models.BuildSetRequest
	Preferences []models.Preference `json:"preferences,omitempty"`
}

// ShareResponse carries the token and the path that decodes it
type ShareResponse struct {
	Token          string `json:"token"`
	Path           string `json:"path"`
	CatalogVersion string `json:"catalog_version"`
}

// SharedBuilds is the decoded content of a token
type SharedBuilds struct {
	Builds []sharecode.Build `json:"builds"`
}

// CreateShare generates the requested build set and encodes it as a token.
// Prices in the token come from the catalog, never from the client.
func (h *Handler) CreateShare(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshot()
	if snap == nil {
		h.writeError(w, "Catalog not loaded", http.StatusServiceUnavailable)
		return
	}

	var req ShareRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.writeErrorDetails(w, "Invalid build request", err.Error(), http.StatusBadRequest)
		return
	}
	for i, p := range req.Preferences {
		parsed, err := models.ParsePreference(string(p))
		if err != nil {
			h.writeErrorDetails(w, "Invalid preference", err.Error(), http.StatusBadRequest)
			return
		}
		req.Preferences[i] = parsed
	}

	set, err := h.buildSet(r.Context(), snap, req.BuildSetRequest)
	if err != nil {
		h.writeGenerationError(w, err)
		return
	}

	token, err := sharecode.Encode(selectBuilds(set.Builds, req.Preferences))
	if err != nil {
		h.writeErrorDetails(w, "Failed to encode share token", err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, ShareResponse{
		Token:          token,
		Path:           "/api/v1/share/" + token,
		CatalogVersion: snap.Version,
	})
}

// selectBuilds keeps the builds whose preference is listed, in set order.
// An empty list keeps every build.
func selectBuilds(builds []models.Build, preferences []models.Preference) []models.Build {
	if len(preferences) == 0 {
		return builds
	}
	kept := make([]models.Build, 0, len(builds))
	for _, b := range builds {
		if slices.Contains(preferences, b.Preference) {
			kept = append(kept, b)
		}
	}
	return kept
}

// GetShare decodes a token into build summaries.
func (h *Handler) GetShare(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if err := services.ValidateShareToken(token); err != nil {
		h.writeErrorDetails(w, "Invalid share token", err.Error(), http.StatusBadRequest)
		return
	}

	builds, err := sharecode.Decode(token)
	if err != nil {
		if errors.Is(err, sharecode.ErrInvalidToken) {
			h.writeErrorDetails(w, "Invalid share token", err.Error(), http.StatusBadRequest)
			return
		}
		h.writeError(w, "Failed to decode share token", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, SharedBuilds{Builds: builds})
}
