// ABOUTME: Ordered fallback routine shared by all category selectors
// ABOUTME: Tries stages in order and tags the pick as ideal, relaxed, or degraded

package services

import (
	"cmp"
	"slices"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/shopspring/decimal"
)

// stage is one step of a fallback chain
type stage[T any] struct {
	rule    string
	outcome models.Outcome
	pick    func() (T, bool)
}

// firstAvailable returns the pick of the first stage that yields one.
// When every stage comes up empty it fails with a CategoryExhaustedError.
func firstAvailable[T any](category models.Category, constraint string, stages ...stage[T]) (T, models.Selection, error) {
	for _, s := range stages {
		if v, ok := s.pick(); ok {
			return v, models.Selection{Category: category, Outcome: s.outcome, Rule: s.rule}, nil
		}
	}
	var zero T
	return zero, models.Selection{}, &models.CategoryExhaustedError{Category: category, Constraint: constraint}
}

// cheapest returns the lowest-priced item accepted by keep.
// The first item in catalog order wins a tie.
func cheapest[T any](items []T, price func(T) decimal.Decimal, keep func(T) bool) (T, bool) {
	var best T
	found := false
	for _, item := range items {
		if keep != nil && !keep(item) {
			continue
		}
		if !found || price(item).LessThan(price(best)) {
			best = item
			found = true
		}
	}
	return best, found
}

// bestRanked filters items with keep and stable-sorts them by score descending.
// Catalog order breaks ties.
func bestRanked[T any](items []T, keep func(T) bool, score func(T) float64) (T, bool) {
	candidates := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			candidates = append(candidates, item)
		}
	}
	if len(candidates) == 0 {
		var zero T
		return zero, false
	}
	slices.SortStableFunc(candidates, func(a, b T) int {
		return cmp.Compare(score(b), score(a))
	})
	return candidates[0], true
}

// perDollar divides a score by a price. Free items divide by one.
func perDollar(score float64, price decimal.Decimal) float64 {
	p := price.InexactFloat64()
	if p <= 0 {
		p = 1
	}
	return score / p
}

// capOf multiplies the budget by a share
func capOf(budget, share decimal.Decimal) decimal.Decimal {
	return budget.Mul(share)
}

func always[T any](T) bool { return true }
