package cmd

import (
	"testing"
)

const sampleCatalogPath = "../../data/catalog.json"

// resetGenerateFlags restores generate flag globals after a test
func resetGenerateFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		genBudget, genUseCase, genResolution = "", "gaming", "1080p"
		genPreference, genCatalog, genClearance = "", "", "warn"
		jsonOutput = false
		apiURL = ""
	})
}
