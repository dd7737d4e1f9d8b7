// ABOUTME: HTTP handler for the health endpoint
// ABOUTME: Reports service status with the catalog version and counts

package handlers

import (
	"net/http"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/services"
)

// HealthResponse is the body of GET /api/v1/health
type HealthResponse struct {
	Status          string                   `json:"status"`
	CatalogVersion  string                   `json:"catalog_version,omitempty"`
	Counts          map[models.Category]int  `json:"counts,omitempty"`
	ClearancePolicy services.ClearancePolicy `json:"clearance_policy"`
}

// Health returns API health status. Without a catalog it reports "degraded" with 503.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", ClearancePolicy: h.generator.Policy()}

	snap := h.snapshot()
	if snap == nil {
		resp.Status = "degraded"
		h.writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	resp.CatalogVersion = snap.Version
	resp.Counts = snap.Catalog.Counts()
	h.writeJSON(w, http.StatusOK, resp)
}
