// ABOUTME: Tests for the tabbed build view
// ABOUTME: Validates tab navigation, part rendering, and warning display

package buildview

import (
	"strings"
	"testing"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSet() *models.BuildSet {
	build := func(p models.Preference, gpu string, total int64) models.Build {
		return models.Build{
			Preference: p,
			Budget:     decimal.NewFromInt(1000),
			UseCase:    models.UseCaseGaming,
			Resolution: models.Resolution1440,
			Parts: models.Parts{
				CPU: models.CPU{ID: "cpu-a", Name: "Ryzen 5 7600", Price: decimal.NewFromInt(199)},
				GPU: models.GPU{ID: "gpu-" + string(p), Name: gpu, Price: decimal.NewFromInt(329)},
			},
			TotalPrice:       decimal.NewFromInt(total),
			EstimatedWattage: 480,
		}
	}

	set := &models.BuildSet{
		CatalogVersion: "v1",
		Builds: []models.Build{
			build(models.PreferenceValue, "Radeon RX 6600", 820),
			build(models.PreferenceBalanced, "Radeon RX 7700 XT", 975),
			build(models.PreferenceMax, "GeForce RTX 4070", 1080),
		},
	}
	set.Builds[2].Warnings = []models.Warning{models.OverBudget(decimal.NewFromInt(80))}
	set.Builds[1].Reasons = []models.Reason{{Kind: models.ReasonUSBCHeader, Part: "B650 Tomahawk"}}
	set.Builds[0].Selections = []models.Selection{{Category: models.CategoryMotherboard, Outcome: models.OutcomeRelaxed, Rule: "cheapest compatible"}}
	return set
}

func TestViewStartsOnFirstTab(t *testing.T) {
	v := New(sampleSet(), 100)

	require.NotNil(t, v.Active())
	assert.Equal(t, models.PreferenceValue, v.Active().Preference)

	view := v.View()
	for _, tab := range []string{"VALUE", "BALANCED", "MAX"} {
		assert.Contains(t, view, tab)
	}
	assert.Contains(t, view, "Radeon RX 6600")
	assert.Contains(t, view, "$820.00 of $1000.00")
	assert.Contains(t, view, "~480W")
}

func TestViewTabNavigationWraps(t *testing.T) {
	v := New(sampleSet(), 100)

	v.Prev()
	assert.Equal(t, models.PreferenceMax, v.Active().Preference)

	v.Next()
	assert.Equal(t, models.PreferenceValue, v.Active().Preference)

	v.Next()
	assert.Equal(t, models.PreferenceBalanced, v.Active().Preference)
}

func TestViewSelect(t *testing.T) {
	v := New(sampleSet(), 100)

	assert.True(t, v.Select(models.PreferenceMax))
	assert.Equal(t, models.PreferenceMax, v.Active().Preference)
	assert.False(t, v.Select("turbo"))
	assert.Equal(t, models.PreferenceMax, v.Active().Preference)
}

func TestViewShowsWarningsAndReasons(t *testing.T) {
	v := New(sampleSet(), 120)

	v.Select(models.PreferenceMax)
	view := v.View()
	assert.Contains(t, view, "Warnings")
	assert.Contains(t, view, "Build exceeds budget by $80.00")

	v.Select(models.PreferenceBalanced)
	view = v.View()
	assert.NotContains(t, view, "Warnings")
	assert.Contains(t, view, "B650 Tomahawk has a front-panel USB-C header")
}

func TestViewShowsRelaxedOutcome(t *testing.T) {
	v := New(sampleSet(), 120)

	view := v.View()
	if !strings.Contains(view, "relaxed") {
		t.Error("expected relaxed motherboard pick to show an outcome badge")
	}
}

func TestViewEmptySet(t *testing.T) {
	tests := []struct {
		name string
		set  *models.BuildSet
	}{
		{"nil set", nil},
		{"no builds", &models.BuildSet{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := New(tc.set, 80)
			v.Next()
			v.Prev()
			assert.Nil(t, v.Active())
			assert.Equal(t, "No builds", v.View())
		})
	}
}

func TestSpentPercent(t *testing.T) {
	tests := []struct {
		name   string
		budget int64
		total  int64
		want   float64
	}{
		{"under budget", 1000, 750, 75},
		{"over budget", 1000, 1100, 110},
		{"zero budget, nothing spent", 0, 0, 0},
		{"zero budget, spending", 0, 50, 200},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &models.Build{Budget: decimal.NewFromInt(tc.budget), TotalPrice: decimal.NewFromInt(tc.total)}
			assert.InDelta(t, tc.want, spentPercent(b), 0.001)
		})
	}
}
