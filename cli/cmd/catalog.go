// ABOUTME: Catalog commands for the hrg CLI
// ABOUTME: Builds merged catalogs from per-category files, validates them, and shows the backend catalog

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/catalog"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/spf13/cobra"
)

var (
	catalogDataDir string
	catalogOut     string
	catalogPath    string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Build, validate, and inspect part catalogs",
}

var catalogBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Merge per-category files into one catalog",
	Long: `Merge <category>.json or <category>.yaml files from a data directory into one catalog file.

Missing category files produce empty categories. The merged catalog is validated and
written even when issues are found; the exit code reports them.

Exit codes:
  0 - Catalog written with no issues
  1 - Catalog written with validation issues
  2 - Error (unreadable data, unwritable output)`,
	Run: func(cmd *cobra.Command, args []string) {
		if code := runCatalogBuild(os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a catalog file",
	Long: `Report missing fields, duplicate ids, non-positive prices, out-of-range tiers and empty categories.

Exit codes:
  0 - Catalog is valid
  1 - Catalog has issues
  2 - Error (unreadable catalog)`,
	Run: func(cmd *cobra.Command, args []string) {
		if code := runCatalogValidate(os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var catalogInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the catalog loaded by the backend",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runCatalogInfo(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogBuildCmd, catalogValidateCmd, catalogInfoCmd)

	catalogBuildCmd.Flags().StringVar(&catalogDataDir, "data-dir", "data/parts", "Directory of per-category files")
	catalogBuildCmd.Flags().StringVar(&catalogOut, "out", "data/catalog.json", "Merged catalog output (.json or .yaml)")
	catalogValidateCmd.Flags().StringVar(&catalogPath, "catalog", "data/catalog.json", "Catalog file to validate")
}

// catalogReport is the JSON form of a validation run
type catalogReport struct {
	Path            string                  `json:"path"`
	Version         string                  `json:"version"`
	Valid           bool                    `json:"valid"`
	Counts          map[models.Category]int `json:"counts"`
	EmptyCategories []models.Category       `json:"empty_categories"`
	Issues          []catalog.Issue         `json:"issues"`
}

func newCatalogReport(path string, c *models.Catalog) (catalogReport, error) {
	version, err := catalog.Version(c)
	if err != nil {
		return catalogReport{}, err
	}
	issues := catalog.Validate(c)
	empty := catalog.EmptyCategories(c)
	return catalogReport{
		Path:            path,
		Version:         version,
		Valid:           len(issues) == 0 && len(empty) == 0,
		Counts:          c.Counts(),
		EmptyCategories: empty,
		Issues:          issues,
	}, nil
}

// runCatalogBuild merges the data directory and writes the catalog
func runCatalogBuild(w io.Writer) int {
	c, err := catalog.LoadDir(catalogDataDir)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	report, err := newCatalogReport(catalogOut, c)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if err := catalog.Write(catalogOut, c); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(report))
	} else {
		fmt.Fprintf(w, "Wrote %s (%d records, version %s)\n", catalogOut, totalRecords(c), report.Version)
		fmt.Fprintln(w, formatCatalogReportHuman(report))
	}
	if !report.Valid {
		return 1
	}
	return 0
}

// runCatalogValidate validates a merged catalog file
func runCatalogValidate(w io.Writer) int {
	c, err := catalog.Load(catalogPath)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	report, err := newCatalogReport(catalogPath, c)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(report))
	} else {
		fmt.Fprintln(w, formatCatalogReportHuman(report))
	}
	if !report.Valid {
		return 1
	}
	return 0
}

// runCatalogInfo shows the backend catalog summary
func runCatalogInfo(ctx context.Context, w io.Writer) int {
	summary, err := apiClient().Catalog(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(summary))
		return 0
	}
	fmt.Fprintf(w, `Version:  %s
Source:   %s
Loaded:   %s
Parts:    %s
`, summary.Version, summary.Source, summary.LoadedAt.Format(time.RFC3339), formatCounts(summary.Counts))
	if len(summary.EmptyCategories) > 0 {
		fmt.Fprintf(w, "Empty:    %v\n", summary.EmptyCategories)
	}
	return 0
}

// formatCatalogReportHuman lists issues and a pass/fail summary
func formatCatalogReportHuman(r catalogReport) string {
	out := fmt.Sprintf("Parts:    %s\n", formatCounts(r.Counts))
	for _, e := range r.EmptyCategories {
		out += fmt.Sprintf("✗ %s: category is empty\n", e)
	}
	for _, issue := range r.Issues {
		out += fmt.Sprintf("✗ %s\n", issue)
	}
	if r.Valid {
		out += "\nVALID: catalog " + r.Version
	} else {
		out += fmt.Sprintf("\nINVALID: %d issue(s), %d empty category(ies)", len(r.Issues), len(r.EmptyCategories))
	}
	return out
}
