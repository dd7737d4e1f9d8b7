// ABOUTME: Catalog validation for required fields, duplicate ids, and value ranges
// ABOUTME: Returns every issue found instead of stopping at the first one

package catalog

import (
	"fmt"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/shopspring/decimal"
)

const (
	// MinTier is the lowest tier a record may carry
	MinTier = 1
	// MaxTier is the highest tier a record may carry
	MaxTier = 5
)

// Issue is one problem found in a catalog record
type Issue struct {
	Category models.Category `json:"category"`
	Index    int             `json:"index"`
	ID       string          `json:"id,omitempty"`
	Field    string          `json:"field"`
	Problem  string          `json:"problem"`
}

func (i Issue) String() string {
	id := i.ID
	if id == "" {
		id = "?"
	}
	return fmt.Sprintf("%s[%d] %s %s (id=%s)", i.Category, i.Index, i.Field, i.Problem, id)
}

// check collects issues for one record
type check struct {
	category models.Category
	index    int
	id       string
	issues   *[]Issue
}

func (c check) add(field, problem string) {
	*c.issues = append(*c.issues, Issue{Category: c.category, Index: c.index, ID: c.id, Field: field, Problem: problem})
}

func (c check) str(field, v string) {
	if v == "" {
		c.add(field, "missing")
	}
}

func (c check) positive(field string, v int) {
	if v <= 0 {
		c.add(field, "missing")
	}
}

func (c check) price(v decimal.Decimal) {
	if !v.IsPositive() {
		c.add("price", "must be positive")
	}
}

// tier validates a tier; optional tiers may be zero
func (c check) tier(v int, required bool) {
	if v == 0 && !required {
		return
	}
	if v < MinTier || v > MaxTier {
		c.add("tier", fmt.Sprintf("must be between %d and %d", MinTier, MaxTier))
	}
}

func validateRecords[T any](category models.Category, records []T, id func(T) string, fields func(check, T), issues *[]Issue) {
	seen := make(map[string]bool, len(records))
	for i, r := range records {
		c := check{category: category, index: i, id: id(r), issues: issues}
		c.str("id", c.id)
		fields(c, r)
		if c.id == "" {
			continue
		}
		if seen[c.id] {
			c.add("id", "duplicate")
		}
		seen[c.id] = true
	}
}

// Validate reports every missing required field, duplicate id, non-positive
// price, and out-of-range tier in the catalog.
func Validate(c *models.Catalog) []Issue {
	issues := []Issue{}

	validateRecords(models.CategoryCPU, c.CPUs, func(r models.CPU) string { return r.ID }, func(ck check, r models.CPU) {
		ck.str("name", r.Name)
		ck.str("socket", r.Socket)
		ck.str("memoryType", r.MemoryType)
		ck.positive("tdpW", r.TDPW)
		ck.tier(r.Tier, true)
		ck.price(r.Price)
	}, &issues)

	validateRecords(models.CategoryGPU, c.GPUs, func(r models.GPU) string { return r.ID }, func(ck check, r models.GPU) {
		ck.str("name", r.Name)
		ck.positive("tdpW", r.TDPW)
		ck.positive("lengthMM", r.LengthMM)
		ck.tier(r.Tier, true)
		ck.price(r.Price)
	}, &issues)

	validateRecords(models.CategoryMotherboard, c.Motherboards, func(r models.Motherboard) string { return r.ID }, func(ck check, r models.Motherboard) {
		ck.str("name", r.Name)
		ck.str("socket", r.Socket)
		ck.str("memoryType", r.MemoryType)
		ck.str("formFactor", r.FormFactor)
		if r.M2Slots < 0 {
			ck.add("m2Slots", "must not be negative")
		}
		ck.tier(r.Tier, false)
		ck.price(r.Price)
	}, &issues)

	validateRecords(models.CategoryMemory, c.Memory, func(r models.Memory) string { return r.ID }, func(ck check, r models.Memory) {
		ck.str("name", r.Name)
		ck.str("type", r.Type)
		ck.positive("capacityGB", r.CapacityGB)
		ck.tier(r.Tier, false)
		ck.price(r.Price)
	}, &issues)

	validateRecords(models.CategoryStorage, c.Storage, func(r models.Storage) string { return r.ID }, func(ck check, r models.Storage) {
		ck.str("name", r.Name)
		ck.positive("capacityGB", r.CapacityGB)
		ck.tier(r.Tier, false)
		ck.price(r.Price)
	}, &issues)

	validateRecords(models.CategoryPSU, c.PSUs, func(r models.PSU) string { return r.ID }, func(ck check, r models.PSU) {
		ck.str("name", r.Name)
		ck.positive("wattage", r.Wattage)
		ck.price(r.Price)
	}, &issues)

	validateRecords(models.CategoryCase, c.Cases, func(r models.Case) string { return r.ID }, func(ck check, r models.Case) {
		ck.str("name", r.Name)
		if len(r.Supports) == 0 {
			ck.add("supports", "missing")
		}
		ck.positive("gpuMaxMm", r.GPUMaxMM)
		ck.positive("coolerMaxMm", r.CoolerMaxMM)
		ck.tier(r.Tier, false)
		ck.price(r.Price)
	}, &issues)

	validateRecords(models.CategoryCooler, c.Coolers, func(r models.Cooler) string { return r.ID }, func(ck check, r models.Cooler) {
		ck.str("name", r.Name)
		ck.str("type", r.Type)
		ck.positive("heightMm", r.HeightMM)
		ck.tier(r.Tier, false)
		ck.price(r.Price)
	}, &issues)

	return issues
}

// EmptyCategories lists categories with no records; the engine cannot build without them
func EmptyCategories(c *models.Catalog) []models.Category {
	var empty []models.Category
	counts := c.Counts()
	for _, category := range models.AllCategories {
		if counts[category] == 0 {
			empty = append(empty, category)
		}
	}
	return empty
}
