// ABOUTME: HTTP handlers for build generation
// ABOUTME: Serves the three-variant build set and single preference builds

package handlers

import (
	"net/http"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
)

// GenerateBuilds returns the value, balanced and max builds for one request.
func (h *Handler) GenerateBuilds(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshot()
	if snap == nil {
		h.writeError(w, "Catalog not loaded", http.StatusServiceUnavailable)
		return
	}

	var req models.BuildSetRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.writeErrorDetails(w, "Invalid build request", err.Error(), http.StatusBadRequest)
		return
	}

	set, err := h.buildSet(r.Context(), snap, req)
	if err != nil {
		h.writeGenerationError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, set)
}

// GenerateBuild returns the build for the preference named in the path.
func (h *Handler) GenerateBuild(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshot()
	if snap == nil {
		h.writeError(w, "Catalog not loaded", http.StatusServiceUnavailable)
		return
	}

	preference, err := models.ParsePreference(r.PathValue("preference"))
	if err != nil {
		h.writeErrorDetails(w, "Invalid preference", err.Error(), http.StatusBadRequest)
		return
	}

	var body models.BuildSetRequest
	if !h.decodeJSON(w, r, &body) {
		return
	}
	req := body.WithPreference(preference)
	if err := req.Validate(); err != nil {
		h.writeErrorDetails(w, "Invalid build request", err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.build(snap, req)
	if err != nil {
		h.writeGenerationError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}
