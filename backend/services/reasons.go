// ABOUTME: Rationale generator for build picks
// ABOUTME: Produces structured reasons that are rendered to text at presentation time

package services

import "github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"

// GenerateReasons explains the GPU, CPU, board, and PSU picks. A pick that
// came from a fallback stage gets a reason naming the target it missed.
func GenerateReasons(parts models.Parts, req models.BuildRequest, profile Profile, selections []models.Selection, loadW int) []models.Reason {
	var reasons []models.Reason

	if fellBack(selections, models.CategoryGPU) {
		budgetCap := capOf(req.Budget, profile.GPUBudgetShare)
		reasons = append(reasons, models.Reason{Kind: models.ReasonGPUFallback, Part: parts.GPU.Name, Cap: &budgetCap})
	} else {
		reasons = append(reasons, models.Reason{Kind: models.ReasonGPUResolution, Part: parts.GPU.Name, Resolution: req.Resolution})
	}

	if fellBack(selections, models.CategoryCPU) {
		budgetCap := CPUBudgetCap(req)
		reasons = append(reasons, models.Reason{
			Kind: models.ReasonCPUFallback,
			Part: parts.CPU.Name,
			Tier: CPUTierCeiling(profile, req.UseCase),
			Cap:  &budgetCap,
		})
	} else {
		reasons = append(reasons, models.Reason{Kind: models.ReasonCPUBalance, Part: parts.CPU.Name, Tier: parts.CPU.Tier, Preference: req.Preference})
	}

	if parts.Motherboard.USBCHeader {
		reasons = append(reasons, models.Reason{Kind: models.ReasonUSBCHeader, Part: parts.Motherboard.Name})
	}

	if minimum := RequiredPSUWattage(loadW); parts.PSU.Wattage < minimum {
		reasons = append(reasons, models.Reason{Kind: models.ReasonPSUFallback, LoadW: loadW, RatedW: parts.PSU.Wattage, MinimumW: minimum})
	} else {
		reasons = append(reasons, models.Reason{Kind: models.ReasonPSUSizing, LoadW: loadW, RatedW: parts.PSU.Wattage})
	}
	return reasons
}

func fellBack(selections []models.Selection, c models.Category) bool {
	for _, s := range selections {
		if s.Category == c {
			return s.Outcome != models.OutcomeIdeal
		}
	}
	return false
}
