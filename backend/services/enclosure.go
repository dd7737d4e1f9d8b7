// ABOUTME: Case and cooler selection with physical clearance checks
// ABOUTME: Includes the optional re-search for a clearance-safe case and cooler pair

package services

import (
	"fmt"
	"slices"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/shopspring/decimal"
)

// PremiumCoolerTier is the CPU tier from which a dual-tower cooler is preferred
const PremiumCoolerTier = 3

func casePrice(c models.Case) decimal.Decimal     { return c.Price }
func coolerPrice(c models.Cooler) decimal.Decimal { return c.Price }

// caseFits reports whether a case takes the board and the GPU
func caseFits(c models.Case, board models.Motherboard, gpu models.GPU) bool {
	return c.SupportsFormFactor(board.FormFactor) && c.GPUMaxMM >= gpu.LengthMM
}

// SelectCase picks the cheapest case that fits the board and GPU, preferring one within cap.
// When nothing fits it returns the cheapest case overall as a degraded pick.
func SelectCase(cases []models.Case, board models.Motherboard, gpu models.GPU, budget decimal.Decimal) (models.Case, models.Selection, error) {
	budgetCap := capOf(budget, caseShare)
	candidates := make([]models.Case, 0, len(cases))
	for _, c := range cases {
		if caseFits(c, board, gpu) {
			candidates = append(candidates, c)
		}
	}
	slices.SortStableFunc(candidates, func(a, b models.Case) int { return a.Price.Cmp(b.Price) })

	return firstAvailable(models.CategoryCase, "catalog has no entries",
		stage[models.Case]{
			rule:    fmt.Sprintf("cheapest %s case fitting %dmm GPU within $%s", board.FormFactor, gpu.LengthMM, budgetCap.StringFixed(2)),
			outcome: models.OutcomeIdeal,
			pick: func() (models.Case, bool) {
				for _, c := range candidates {
					if c.Price.LessThanOrEqual(budgetCap) {
						return c, true
					}
				}
				return models.Case{}, false
			},
		},
		stage[models.Case]{
			rule:    "cheapest fitting case over cap",
			outcome: models.OutcomeRelaxed,
			pick: func() (models.Case, bool) {
				if len(candidates) == 0 {
					return models.Case{}, false
				}
				return candidates[0], true
			},
		},
		stage[models.Case]{
			rule:    "cheapest case in catalog, clearance not assured",
			outcome: models.OutcomeDegraded,
			pick:    func() (models.Case, bool) { return cheapest(cases, casePrice, always[models.Case]) },
		},
	)
}

// PreferredCoolerClass returns the cooler class matching a CPU tier
func PreferredCoolerClass(cpu models.CPU) string {
	if cpu.Tier >= PremiumCoolerTier {
		return models.CoolerClassDualTower
	}
	return models.CoolerClassTower
}

// SelectCooler picks the cheapest cooler of the preferred class and swaps it
// for a shorter one when it does not clear the case.
func SelectCooler(coolers []models.Cooler, cpu models.CPU, pcCase models.Case) (models.Cooler, models.Selection, error) {
	class := PreferredCoolerClass(cpu)
	preferred, sel, err := firstAvailable(models.CategoryCooler, "catalog has no entries",
		stage[models.Cooler]{
			rule:    "cheapest " + class + " cooler",
			outcome: models.OutcomeIdeal,
			pick: func() (models.Cooler, bool) {
				return cheapest(coolers, coolerPrice, func(c models.Cooler) bool { return c.Type == class })
			},
		},
		stage[models.Cooler]{
			rule:    "cheapest cooler, no " + class + " available",
			outcome: models.OutcomeRelaxed,
			pick:    func() (models.Cooler, bool) { return cheapest(coolers, coolerPrice, always[models.Cooler]) },
		},
	)
	if err != nil {
		return models.Cooler{}, models.Selection{}, err
	}
	if preferred.HeightMM <= pcCase.CoolerMaxMM {
		return preferred, sel, nil
	}

	return firstAvailable(models.CategoryCooler, "catalog has no entries",
		stage[models.Cooler]{
			rule:    fmt.Sprintf("cheapest cooler under %dmm case limit", pcCase.CoolerMaxMM),
			outcome: models.OutcomeRelaxed,
			pick: func() (models.Cooler, bool) {
				return cheapest(coolers, coolerPrice, func(c models.Cooler) bool { return c.HeightMM <= pcCase.CoolerMaxMM })
			},
		},
		stage[models.Cooler]{
			rule:    "cheapest cooler in catalog, clearance not assured",
			outcome: models.OutcomeDegraded,
			pick:    func() (models.Cooler, bool) { return cheapest(coolers, coolerPrice, always[models.Cooler]) },
		},
	)
}

// ClearanceViolated reports whether the case does not take the board or the
// GPU or cooler exceeds its limits
func ClearanceViolated(pcCase models.Case, board models.Motherboard, gpu models.GPU, cooler models.Cooler) bool {
	return !pcCase.SupportsFormFactor(board.FormFactor) ||
		gpu.LengthMM > pcCase.GPUMaxMM ||
		cooler.HeightMM > pcCase.CoolerMaxMM
}

// ResearchEnclosure searches every case and cooler pair for one that clears
// the GPU and cooler and takes the board. Pairs with the preferred cooler class
// win over others, then the lowest combined price, then catalog order.
func ResearchEnclosure(cases []models.Case, coolers []models.Cooler, board models.Motherboard, gpu models.GPU, cpu models.CPU) (models.Case, models.Cooler, bool) {
	type pair struct {
		pcCase    models.Case
		cooler    models.Cooler
		preferred bool
		price     decimal.Decimal
	}
	class := PreferredCoolerClass(cpu)

	var pairs []pair
	for _, c := range cases {
		if !caseFits(c, board, gpu) {
			continue
		}
		for _, k := range coolers {
			if k.HeightMM > c.CoolerMaxMM {
				continue
			}
			pairs = append(pairs, pair{
				pcCase:    c,
				cooler:    k,
				preferred: k.Type == class,
				price:     c.Price.Add(k.Price),
			})
		}
	}
	if len(pairs) == 0 {
		return models.Case{}, models.Cooler{}, false
	}
	slices.SortStableFunc(pairs, func(a, b pair) int {
		if a.preferred != b.preferred {
			if a.preferred {
				return -1
			}
			return 1
		}
		return a.price.Cmp(b.price)
	})
	return pairs[0].pcCase, pairs[0].cooler, true
}
