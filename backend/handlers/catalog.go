// ABOUTME: HTTP handlers for catalog inspection
// ABOUTME: Reports the loaded catalog version, counts, and validation issues

package handlers

import (
	"net/http"
	"time"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/catalog"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
)

// CatalogSummary describes the catalog in effect
type CatalogSummary struct {
	Version         string                  `json:"version"`
	Source          string                  `json:"source"`
	LoadedAt        time.Time               `json:"loaded_at"`
	Counts          map[models.Category]int `json:"counts"`
	EmptyCategories []models.Category       `json:"empty_categories"`
}

// CatalogIssues lists validation problems of the catalog in effect
type CatalogIssues struct {
	Version string          `json:"version"`
	Valid   bool            `json:"valid"`
	Issues  []catalog.Issue `json:"issues"`
}

func summarize(snap *catalog.Snapshot) CatalogSummary {
	empty := catalog.EmptyCategories(snap.Catalog)
	if empty == nil {
		empty = []models.Category{}
	}
	return CatalogSummary{
		Version:         snap.Version,
		Source:          snap.Source,
		LoadedAt:        snap.LoadedAt,
		Counts:          snap.Catalog.Counts(),
		EmptyCategories: empty,
	}
}

// GetCatalog returns the catalog summary.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshot()
	if snap == nil {
		h.writeError(w, "Catalog not loaded", http.StatusServiceUnavailable)
		return
	}
	h.writeJSON(w, http.StatusOK, summarize(snap))
}

// GetCatalogIssues validates the catalog in effect.
func (h *Handler) GetCatalogIssues(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshot()
	if snap == nil {
		h.writeError(w, "Catalog not loaded", http.StatusServiceUnavailable)
		return
	}
	issues := catalog.Validate(snap.Catalog)
	if issues == nil {
		issues = []catalog.Issue{}
	}
	h.writeJSON(w, http.StatusOK, CatalogIssues{
		Version: snap.Version,
		Valid:   len(issues) == 0,
		Issues:  issues,
	})
}
