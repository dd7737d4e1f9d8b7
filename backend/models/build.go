// ABOUTME: Build output types, selection outcomes, and selection errors
// ABOUTME: A Build is produced once by the pipeline and never mutated afterward

package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrExhausted is wrapped by every hard selection failure
var ErrExhausted = errors.New("category exhausted")

// CategoryExhaustedError reports that no record satisfies a hard constraint
type CategoryExhaustedError struct {
	Category   Category
	Constraint string
}

func (e *CategoryExhaustedError) Error() string {
	return fmt.Sprintf("no %s satisfies constraint: %s", e.Category, e.Constraint)
}

// Unwrap lets errors.Is match ErrExhausted
func (e *CategoryExhaustedError) Unwrap() error {
	return ErrExhausted
}

// Outcome tags how a category pick was reached
type Outcome string

const (
	// OutcomeIdeal means the primary rule produced the pick
	OutcomeIdeal Outcome = "ideal"
	// OutcomeRelaxed means a documented fallback relaxed a cap or preference
	OutcomeRelaxed Outcome = "relaxed"
	// OutcomeDegraded means the fallback may violate a physical or electrical constraint
	OutcomeDegraded Outcome = "degraded"
)

// Selection is the report of one category pick
type Selection struct {
	Category Category `json:"category"`
	Outcome  Outcome  `json:"outcome"`
	Rule     string   `json:"rule"`
}

// Parts holds exactly one record per category
type Parts struct {
	CPU         CPU         `json:"cpu"`
	GPU         GPU         `json:"gpu"`
	Motherboard Motherboard `json:"motherboard"`
	Memory      Memory      `json:"ram"`
	Storage     Storage     `json:"storage"`
	PSU         PSU         `json:"psu"`
	Case        Case        `json:"case"`
	Cooler      Cooler      `json:"cooler"`
}

// PartSummary is the id, name and price of one pick
type PartSummary struct {
	Category Category        `json:"category"`
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
}

// Summaries lists the picks in category order
func (p Parts) Summaries() []PartSummary {
	return []PartSummary{
		{CategoryCPU, p.CPU.ID, p.CPU.Name, p.CPU.Price},
		{CategoryGPU, p.GPU.ID, p.GPU.Name, p.GPU.Price},
		{CategoryMotherboard, p.Motherboard.ID, p.Motherboard.Name, p.Motherboard.Price},
		{CategoryMemory, p.Memory.ID, p.Memory.Name, p.Memory.Price},
		{CategoryStorage, p.Storage.ID, p.Storage.Name, p.Storage.Price},
		{CategoryPSU, p.PSU.ID, p.PSU.Name, p.PSU.Price},
		{CategoryCase, p.Case.ID, p.Case.Name, p.Case.Price},
		{CategoryCooler, p.Cooler.ID, p.Cooler.Name, p.Cooler.Price},
	}
}

// Total sums the eight prices
func (p Parts) Total() decimal.Decimal {
	total := decimal.Zero
	for _, s := range p.Summaries() {
		total = total.Add(s.Price)
	}
	return total
}

// Build is one recommended configuration
type Build struct {
	Preference       Preference      `json:"preference"`
	Budget           decimal.Decimal `json:"budget"`
	UseCase          UseCase         `json:"use_case"`
	Resolution       Resolution      `json:"resolution"`
	Parts            Parts           `json:"parts"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	EstimatedWattage int             `json:"estimated_wattage"`
	Warnings         []Warning       `json:"warnings"`
	Reasons          []Reason        `json:"reasons"`
	Selections       []Selection     `json:"selections"`
}

// HasWarning reports whether a warning of the given kind is attached
func (b *Build) HasWarning(kind WarningKind) bool {
	for _, w := range b.Warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}

// HasCritical reports whether any attached warning is critical
func (b *Build) HasCritical() bool {
	for _, w := range b.Warnings {
		if w.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// Outcome returns the selection outcome for a category
func (b *Build) Outcome(c Category) (Outcome, bool) {
	for _, s := range b.Selections {
		if s.Category == c {
			return s.Outcome, true
		}
	}
	return "", false
}

// BuildSet is the three-variant answer to one request
type BuildSet struct {
	Request        BuildSetRequest `json:"request"`
	CatalogVersion string          `json:"catalog_version,omitempty"`
	Builds         []Build         `json:"builds"`
}
