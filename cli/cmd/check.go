// ABOUTME: Check command for the hrg CLI
// ABOUTME: Sweeps sample requests against a catalog as a CI gate for catalog changes

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/catalog"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/spf13/cobra"
)

var (
	checkCatalog   string
	checkBudgets   []int
	checkClearance string
)

var defaultCheckBudgets = []int{500, 750, 1000, 1500, 2000, 3000}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a catalog against sample requests",
	Long: `Validate a catalog and generate builds for every budget, use case and resolution
combination, failing when any request cannot be built or yields a critical warning.

Exit codes:
  0 - All checks passed
  1 - One or more checks failed
  2 - Error (unreadable catalog, invalid input)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCheck(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkCatalog, "catalog", "data/catalog.json", "Catalog file to check")
	checkCmd.Flags().IntSliceVar(&checkBudgets, "budgets", defaultCheckBudgets, "Budgets to sweep in dollars")
	checkCmd.Flags().StringVar(&checkClearance, "clearance", "warn", "Clearance policy (warn, research)")
}

// checkResult represents the result of a single check
type checkResult struct {
	name   string
	detail string
	passed bool
}

// runCheck executes the catalog checks and returns exit code
func runCheck(ctx context.Context, w io.Writer) int {
	if err := validateBudgets(checkBudgets); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	source, err := newLocalSource(checkCatalog, checkClearance)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	results := []checkResult{catalogCheck(source.catalog)}
	sweep, err := sweepRequests(ctx, source, checkBudgets)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	results = append(results, sweep...)

	if IsJSONOutput() {
		fmt.Fprintln(w, formatCheckJSON(results))
	} else {
		fmt.Fprintln(w, formatCheckHuman(results))
	}

	_, failed := countResults(results)
	if failed > 0 {
		return 1
	}
	return 0
}

// validateBudgets ensures the sweep has positive budgets
func validateBudgets(budgets []int) error {
	if len(budgets) == 0 {
		return fmt.Errorf("--budgets must list at least one budget")
	}
	for _, b := range budgets {
		if b <= 0 {
			return fmt.Errorf("--budgets must be positive, got %d", b)
		}
	}
	return nil
}

// catalogCheck reports record validation issues and empty categories
func catalogCheck(c *models.Catalog) checkResult {
	issues := catalog.Validate(c)
	empty := catalog.EmptyCategories(c)
	r := checkResult{name: "Catalog records", passed: len(issues) == 0 && len(empty) == 0}
	switch {
	case len(empty) > 0:
		names := make([]string, len(empty))
		for i, e := range empty {
			names[i] = string(e)
		}
		r.detail = "empty: " + strings.Join(names, ", ")
	case len(issues) > 0:
		r.detail = fmt.Sprintf("%d issue(s), first: %s", len(issues), issues[0])
	default:
		r.detail = fmt.Sprintf("%d records", totalRecords(c))
	}
	return r
}

func totalRecords(c *models.Catalog) int {
	n := 0
	for _, count := range c.Counts() {
		n += count
	}
	return n
}

// sweepRequests generates a build set for every budget, use case and resolution.
// Only a canceled context aborts the sweep; generation failures become failed checks.
func sweepRequests(ctx context.Context, source BuildSource, budgets []int) ([]checkResult, error) {
	sorted := slices.Clone(budgets)
	slices.Sort(sorted)

	var results []checkResult
	for _, budget := range sorted {
		for _, useCase := range models.UseCases {
			for _, res := range []models.Resolution{models.Resolution1080, models.Resolution1440} {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				req, err := parseBuildSetRequest(fmt.Sprint(budget), string(useCase), res.String())
				if err != nil {
					return nil, err
				}
				results = append(results, checkRequest(ctx, source, req))
			}
		}
	}
	return results, nil
}

// checkRequest fails on generation errors and critical warnings
func checkRequest(ctx context.Context, source BuildSource, req models.BuildSetRequest) checkResult {
	r := checkResult{name: fmt.Sprintf("$%s %s %s", req.Budget, req.UseCase, req.Resolution)}

	set, err := source.GenerateBuilds(ctx, req)
	if err != nil {
		r.detail = err.Error()
		return r
	}

	var critical []string
	for _, b := range set.Builds {
		for _, w := range b.Warnings {
			if w.Severity == models.SeverityCritical {
				critical = append(critical, fmt.Sprintf("%s: %s", b.Preference, w.Message()))
			}
		}
	}
	if len(critical) > 0 {
		r.detail = strings.Join(critical, "; ")
		return r
	}

	totals := make([]string, len(set.Builds))
	for i, b := range set.Builds {
		totals[i] = fmt.Sprintf("%s $%s", b.Preference, b.TotalPrice.StringFixed(2))
	}
	r.detail = strings.Join(totals, ", ")
	r.passed = true
	return r
}

// countResults returns the count of passed and failed checks
func countResults(results []checkResult) (passed, failed int) {
	for _, r := range results {
		if r.passed {
			passed++
		} else {
			failed++
		}
	}
	return
}

// formatCheckHuman formats check results for human readability
func formatCheckHuman(results []checkResult) string {
	var sb strings.Builder

	for _, r := range results {
		symbol := "✓"
		if !r.passed {
			symbol = "✗"
		}
		fmt.Fprintf(&sb, "%s %s: %s\n", symbol, r.name, r.detail)
	}

	passed, failed := countResults(results)
	if failed > 0 {
		fmt.Fprintf(&sb, "\nFAILED: %d check(s) failed", failed)
	} else {
		fmt.Fprintf(&sb, "\nPASSED: All %d check(s) passed", passed)
	}

	return sb.String()
}

// formatCheckJSON formats check results as JSON
func formatCheckJSON(results []checkResult) string {
	_, failed := countResults(results)

	checks := make([]map[string]interface{}, len(results))
	for i, r := range results {
		checks[i] = map[string]interface{}{
			"name":   r.name,
			"detail": r.detail,
			"passed": r.passed,
		}
	}

	status := "passed"
	if failed > 0 {
		status = "failed"
	}

	output := map[string]interface{}{
		"status": status,
		"checks": checks,
	}

	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
