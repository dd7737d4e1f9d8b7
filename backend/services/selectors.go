// ABOUTME: Category selectors for GPU, CPU, motherboard, memory, and storage
// ABOUTME: Each selector applies budget caps and hard constraints with ordered fallbacks

package services

import (
	"fmt"
	"slices"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/shopspring/decimal"
)

const (
	// UseCaseTierCeilingMinecraft caps CPU tier for minecraft builds
	UseCaseTierCeilingMinecraft = 4
	// UseCaseTierCeilingDefault caps CPU tier for every other use case
	UseCaseTierCeilingDefault = 5

	// M2SlotWeight scores each fast-storage slot on a board
	M2SlotWeight = 2
	// USBCHeaderBonus scores a front-panel USB-C header
	USBCHeaderBonus = 3
	// FullSizeBonus scores an ATX board
	FullSizeBonus = 1

	// LargeStorageBudget is the budget at which a large drive is preferred
	LargeStorageBudget = 1200
	// LargeStorageGB is the capacity of a large drive
	LargeStorageGB = 2000

	// BaselineMemoryGB is enough memory for light workloads
	BaselineMemoryGB = 16
	// GamingMemoryGB is the memory target for every other workload
	GamingMemoryGB = 32
)

var (
	cpuShareGeneral   = decimal.RequireFromString("0.18")
	cpuShareDefault   = decimal.RequireFromString("0.25")
	motherboardShare  = decimal.RequireFromString("0.14")
	caseShare         = decimal.RequireFromString("0.10")
	largeStorageFloor = decimal.NewFromInt(LargeStorageBudget)
)

// DefaultDDR5Sockets lists the newer platform sockets that require DDR5
var DefaultDDR5Sockets = []string{"AM5"}

// RequiredMemoryType derives the memory type a CPU's platform needs
func RequiredMemoryType(cpu models.CPU, ddr5Sockets []string) string {
	if slices.Contains(ddr5Sockets, cpu.Socket) {
		return models.MemoryDDR5
	}
	return models.MemoryDDR4
}

func gpuPrice(g models.GPU) decimal.Decimal                 { return g.Price }
func cpuPrice(c models.CPU) decimal.Decimal                 { return c.Price }
func motherboardPrice(m models.Motherboard) decimal.Decimal { return m.Price }
func memoryPrice(m models.Memory) decimal.Decimal           { return m.Price }
func storagePrice(s models.Storage) decimal.Decimal         { return s.Price }

// GPUScore returns the resolution-matching performance field
func GPUScore(g models.GPU, res models.Resolution) float64 {
	if res == models.Resolution1440 {
		return g.Perf1440
	}
	return g.Perf1080
}

// SelectGPU picks the best performance per dollar under the profile's GPU cap
func SelectGPU(gpus []models.GPU, req models.BuildRequest, profile Profile) (models.GPU, models.Selection, error) {
	budgetCap := capOf(req.Budget, profile.GPUBudgetShare)
	return firstAvailable(models.CategoryGPU, "catalog has no entries",
		stage[models.GPU]{
			rule:    fmt.Sprintf("best %s score per dollar within $%s", req.Resolution, budgetCap.StringFixed(2)),
			outcome: models.OutcomeIdeal,
			pick: func() (models.GPU, bool) {
				return bestRanked(gpus,
					func(g models.GPU) bool { return g.Price.LessThanOrEqual(budgetCap) },
					func(g models.GPU) float64 { return perDollar(GPUScore(g, req.Resolution), g.Price) })
			},
		},
		stage[models.GPU]{
			rule:    "cheapest GPU in catalog",
			outcome: models.OutcomeRelaxed,
			pick:    func() (models.GPU, bool) { return cheapest(gpus, gpuPrice, always[models.GPU]) },
		},
	)
}

// CPUTierCeiling combines the profile and use-case tier ceilings
func CPUTierCeiling(profile Profile, useCase models.UseCase) int {
	useCaseCeiling := UseCaseTierCeilingDefault
	if useCase == models.UseCaseMinecraft {
		useCaseCeiling = UseCaseTierCeilingMinecraft
	}
	return min(profile.CPUTierCeiling, useCaseCeiling)
}

// CPUBudgetCap returns the CPU price cap for a request
func CPUBudgetCap(req models.BuildRequest) decimal.Decimal {
	if req.UseCase == models.UseCaseGeneral {
		return capOf(req.Budget, cpuShareGeneral)
	}
	return capOf(req.Budget, cpuShareDefault)
}

// SelectCPU picks the best gaming score per dollar under cap and tier ceiling
func SelectCPU(cpus []models.CPU, req models.BuildRequest, profile Profile) (models.CPU, models.Selection, error) {
	budgetCap := CPUBudgetCap(req)
	ceiling := CPUTierCeiling(profile, req.UseCase)
	return firstAvailable(models.CategoryCPU, "catalog has no entries",
		stage[models.CPU]{
			rule:    fmt.Sprintf("best score per dollar at tier <= %d within $%s", ceiling, budgetCap.StringFixed(2)),
			outcome: models.OutcomeIdeal,
			pick: func() (models.CPU, bool) {
				return bestRanked(cpus,
					func(c models.CPU) bool { return c.Tier <= ceiling && c.Price.LessThanOrEqual(budgetCap) },
					func(c models.CPU) float64 { return perDollar(c.GamingScore, c.Price) })
			},
		},
		stage[models.CPU]{
			rule:    "cheapest CPU in catalog",
			outcome: models.OutcomeRelaxed,
			pick:    func() (models.CPU, bool) { return cheapest(cpus, cpuPrice, always[models.CPU]) },
		},
	)
}

// MotherboardScore weighs storage slots, USB-C header, and full-size form factor
func MotherboardScore(m models.Motherboard) int {
	score := m.M2Slots * M2SlotWeight
	if m.USBCHeader {
		score += USBCHeaderBonus
	}
	if m.FormFactor == models.FormFactorATX {
		score += FullSizeBonus
	}
	return score
}

// SelectMotherboard picks a board matching the CPU socket and derived memory type.
// The socket and memory constraint is never relaxed.
func SelectMotherboard(boards []models.Motherboard, cpu models.CPU, memoryType string, budget decimal.Decimal) (models.Motherboard, models.Selection, error) {
	budgetCap := capOf(budget, motherboardShare)
	compatible := func(m models.Motherboard) bool {
		return m.Socket == cpu.Socket && m.MemoryType == memoryType
	}
	return firstAvailable(models.CategoryMotherboard,
		fmt.Sprintf("socket %s with %s memory", cpu.Socket, memoryType),
		stage[models.Motherboard]{
			rule:    fmt.Sprintf("best feature score within $%s", budgetCap.StringFixed(2)),
			outcome: models.OutcomeIdeal,
			pick: func() (models.Motherboard, bool) {
				return bestRanked(boards,
					func(m models.Motherboard) bool { return compatible(m) && m.Price.LessThanOrEqual(budgetCap) },
					func(m models.Motherboard) float64 { return float64(MotherboardScore(m)) })
			},
		},
		stage[models.Motherboard]{
			rule:    "cheapest compatible board over cap",
			outcome: models.OutcomeRelaxed,
			pick: func() (models.Motherboard, bool) {
				return cheapest(boards, motherboardPrice, compatible)
			},
		},
	)
}

// RequiredMemoryGB returns the capacity target for a use case
func RequiredMemoryGB(useCase models.UseCase) int {
	if useCase == models.UseCaseGeneral || useCase == models.UseCaseRoblox {
		return BaselineMemoryGB
	}
	return GamingMemoryGB
}

// SelectMemory picks the cheapest kit of the required type meeting the capacity target
func SelectMemory(kits []models.Memory, memoryType string, useCase models.UseCase) (models.Memory, models.Selection, error) {
	required := RequiredMemoryGB(useCase)
	matching := func(m models.Memory) bool { return m.Type == memoryType }
	return firstAvailable(models.CategoryMemory, fmt.Sprintf("memory type %s", memoryType),
		stage[models.Memory]{
			rule:    fmt.Sprintf("cheapest %s kit with at least %dGB", memoryType, required),
			outcome: models.OutcomeIdeal,
			pick: func() (models.Memory, bool) {
				return cheapest(kits, memoryPrice, func(m models.Memory) bool {
					return matching(m) && m.CapacityGB >= required
				})
			},
		},
		stage[models.Memory]{
			rule:    fmt.Sprintf("cheapest %s kit below %dGB", memoryType, required),
			outcome: models.OutcomeRelaxed,
			pick:    func() (models.Memory, bool) { return cheapest(kits, memoryPrice, matching) },
		},
	)
}

// SelectStorage prefers a large drive once the budget allows it
func SelectStorage(drives []models.Storage, budget decimal.Decimal) (models.Storage, models.Selection, error) {
	if budget.LessThan(largeStorageFloor) {
		return firstAvailable(models.CategoryStorage, "catalog has no entries",
			stage[models.Storage]{
				rule:    "cheapest drive",
				outcome: models.OutcomeIdeal,
				pick:    func() (models.Storage, bool) { return cheapest(drives, storagePrice, always[models.Storage]) },
			},
		)
	}
	return firstAvailable(models.CategoryStorage, "catalog has no entries",
		stage[models.Storage]{
			rule:    fmt.Sprintf("cheapest drive with at least %dGB", LargeStorageGB),
			outcome: models.OutcomeIdeal,
			pick: func() (models.Storage, bool) {
				return cheapest(drives, storagePrice, func(s models.Storage) bool { return s.CapacityGB >= LargeStorageGB })
			},
		},
		stage[models.Storage]{
			rule:    "cheapest drive",
			outcome: models.OutcomeRelaxed,
			pick:    func() (models.Storage, bool) { return cheapest(drives, storagePrice, always[models.Storage]) },
		},
	)
}
