// ABOUTME: Tests for the interactive command
// ABOUTME: Covers startup errors and start request selection without a terminal

package cmd

import (
	"bytes"
	"testing"

	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/recent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetInteractiveFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		tuiCatalog = ""
		tuiClearance = "warn"
		tuiFresh = false
	})
}

func TestRunInteractive_BadClearancePolicy(t *testing.T) {
	resetInteractiveFlags(t)
	tuiCatalog = sampleCatalogPath
	tuiClearance = "ignore"

	var buf bytes.Buffer
	code := runInteractive(&buf)

	assert.Equal(t, 2, code)
	assert.Contains(t, buf.String(), "unknown clearance policy")
}

func TestRunInteractive_MissingCatalog(t *testing.T) {
	resetInteractiveFlags(t)
	tuiCatalog = "does-not-exist.json"

	var buf bytes.Buffer
	code := runInteractive(&buf)

	assert.Equal(t, 2, code)
	assert.Contains(t, buf.String(), "Error:")
}

func TestStartRequest(t *testing.T) {
	t.Run("fresh skips menu", func(t *testing.T) {
		got, err := startRequest(recent.New(t.TempDir()), true)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("no recents skips menu", func(t *testing.T) {
		got, err := startRequest(recent.New(t.TempDir()), false)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestInteractiveCommand_Flags(t *testing.T) {
	for _, name := range []string{"catalog", "clearance", "fresh"} {
		assert.NotNil(t, interactiveCmd.Flags().Lookup(name), "missing flag %s", name)
	}
	assert.Contains(t, interactiveCmd.Aliases, "tui")
}
