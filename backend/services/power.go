// ABOUTME: Power draw estimation and power supply sizing
// ABOUTME: Arithmetic runs in decimal so ceilings land on exact integers

package services

import (
	"fmt"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/shopspring/decimal"
)

const (
	// BaselineDrawW covers board, memory, storage, and fans
	BaselineDrawW = 110
	// PSULoadHighPercent is the share of PSU rating above which load is flagged
	PSULoadHighPercent = 70
)

var (
	transientHeadroom = decimal.RequireFromString("1.25")
	sustainedHeadroom = decimal.RequireFromString("1.35")
)

// EstimateLoad returns ceil((baseline + CPU TDP + GPU TDP) x 1.25) watts
func EstimateLoad(cpu models.CPU, gpu models.GPU) int {
	raw := decimal.NewFromInt(int64(BaselineDrawW + cpu.TDPW + gpu.TDPW))
	return int(raw.Mul(transientHeadroom).Ceil().IntPart())
}

// RequiredPSUWattage returns ceil(load x 1.35) watts
func RequiredPSUWattage(loadW int) int {
	return int(decimal.NewFromInt(int64(loadW)).Mul(sustainedHeadroom).Ceil().IntPart())
}

func psuPrice(p models.PSU) decimal.Decimal { return p.Price }

// SelectPSU picks the cheapest unit rated at or above the sizing minimum,
// else the highest-rated unit in the catalog.
func SelectPSU(psus []models.PSU, loadW int) (models.PSU, models.Selection, error) {
	minimum := RequiredPSUWattage(loadW)
	return firstAvailable(models.CategoryPSU, "catalog has no entries",
		stage[models.PSU]{
			rule:    fmt.Sprintf("cheapest unit rated at least %dW", minimum),
			outcome: models.OutcomeIdeal,
			pick: func() (models.PSU, bool) {
				return cheapest(psus, psuPrice, func(p models.PSU) bool { return p.Wattage >= minimum })
			},
		},
		stage[models.PSU]{
			rule:    fmt.Sprintf("highest-rated unit, none reaches %dW", minimum),
			outcome: models.OutcomeDegraded,
			pick: func() (models.PSU, bool) {
				var best models.PSU
				found := false
				for _, p := range psus {
					if !found || p.Wattage > best.Wattage {
						best = p
						found = true
					}
				}
				return best, found
			},
		},
	)
}

// LoadHigh reports whether load exceeds 70 percent of the rating
func LoadHigh(loadW, ratedW int) bool {
	return loadW*100 > ratedW*PSULoadHighPercent
}
