// ABOUTME: Preference profile resolver for build tuning
// ABOUTME: Maps value/balanced/max to GPU budget share and CPU tier ceiling

package services

import (
	"fmt"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/shopspring/decimal"
)

// Profile holds the tuning parameters of one preference
type Profile struct {
	Preference     models.Preference
	GPUBudgetShare decimal.Decimal
	CPUTierCeiling int
}

var profiles = map[models.Preference]Profile{
	models.PreferenceValue: {
		Preference:     models.PreferenceValue,
		GPUBudgetShare: decimal.RequireFromString("0.40"),
		CPUTierCeiling: 3,
	},
	models.PreferenceBalanced: {
		Preference:     models.PreferenceBalanced,
		GPUBudgetShare: decimal.RequireFromString("0.48"),
		CPUTierCeiling: 4,
	},
	models.PreferenceMax: {
		Preference:     models.PreferenceMax,
		GPUBudgetShare: decimal.RequireFromString("0.55"),
		CPUTierCeiling: 5,
	},
}

// ResolveProfile returns the tuning parameters for a preference
func ResolveProfile(p models.Preference) (Profile, error) {
	profile, ok := profiles[p]
	if !ok {
		return Profile{}, fmt.Errorf("%w: unknown preference %q", models.ErrInvalidRequest, p)
	}
	return profile, nil
}
