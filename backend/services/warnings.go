// ABOUTME: Compatibility evaluator for assembled builds
// ABOUTME: Emits ordered budget, power, fit, and clearance warnings without blocking a build

package services

import (
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/shopspring/decimal"
)

// EvaluateWarnings inspects every part of a build against the budget, the PSU
// rating, and the case's board support and limits. It runs on the final parts
// regardless of how each part was reached, so every fallback path is covered.
func EvaluateWarnings(parts models.Parts, total, budget decimal.Decimal, loadW int) []models.Warning {
	warnings := []models.Warning{}

	if total.GreaterThan(budget) {
		warnings = append(warnings, models.OverBudget(total.Sub(budget)))
	}

	rated := parts.PSU.Wattage
	if LoadHigh(loadW, rated) {
		warnings = append(warnings, models.PSULoadHigh(loadW, rated))
	}
	if minimum := RequiredPSUWattage(loadW); rated < minimum {
		warnings = append(warnings, models.PSUUndersized(loadW, minimum, rated))
	}

	if board := parts.Motherboard.FormFactor; !parts.Case.SupportsFormFactor(board) {
		warnings = append(warnings, models.FormFactorMismatch(board, parts.Case.Supports))
	}
	if parts.GPU.LengthMM > parts.Case.GPUMaxMM {
		warnings = append(warnings, models.GPUClearance(parts.GPU.LengthMM, parts.Case.GPUMaxMM))
	}
	if parts.Cooler.HeightMM > parts.Case.CoolerMaxMM {
		warnings = append(warnings, models.CoolerClearance(parts.Cooler.HeightMM, parts.Case.CoolerMaxMM))
	}

	return warnings
}
