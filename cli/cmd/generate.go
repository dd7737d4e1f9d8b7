// ABOUTME: Generate command for the hrg CLI
// ABOUTME: Produces value, balanced, and max builds via the API or a local catalog

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/spf13/cobra"
)

var (
	genBudget     string
	genUseCase    string
	genResolution string
	genPreference string
	genCatalog    string
	genClearance  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate build recommendations",
	Long: `Generate value, balanced and max builds for a budget, use case and resolution.

With --preference only that build is generated. With --catalog the builds are generated
locally against the catalog file instead of the backend.

Exit codes:
  0 - Builds generated
  1 - The catalog cannot satisfy the request
  2 - Error (connectivity, invalid input, unreadable catalog)`,
	Example: `  hrg generate --budget 1000 --use-case gaming --resolution 1440p
  hrg generate --budget 800 --use-case roblox --preference value --catalog data/catalog.json`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runGenerate(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addRequestFlags(generateCmd)
	generateCmd.Flags().StringVar(&genPreference, "preference", "", "Generate a single build (value, balanced, max)")
	generateCmd.Flags().StringVar(&genCatalog, "catalog", "", "Generate locally against a catalog file (JSON or YAML)")
	generateCmd.Flags().StringVar(&genClearance, "clearance", "warn", "Local clearance policy (warn, research)")
}

// addRequestFlags registers the flags describing a build request
func addRequestFlags(c *cobra.Command) {
	c.Flags().StringVar(&genBudget, "budget", "", "Total budget in dollars")
	c.Flags().StringVar(&genUseCase, "use-case", "gaming", "Use case (general, gaming, minecraft, roblox)")
	c.Flags().StringVar(&genResolution, "resolution", "1080p", "Target resolution (1080p, 1440p)")
	_ = c.MarkFlagRequired("budget")
}

// runGenerate executes generation and returns exit code
func runGenerate(ctx context.Context, w io.Writer) int {
	req, err := parseBuildSetRequest(genBudget, genUseCase, genResolution)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	source, err := newBuildSource(genCatalog, genClearance)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	var output any
	var human string
	if genPreference != "" {
		pref, err := models.ParsePreference(genPreference)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		build, err := source.GenerateBuild(ctx, req.WithPreference(pref))
		if err != nil {
			return reportGenerationError(w, err)
		}
		output, human = build, formatBuildHuman(build)
	} else {
		set, err := source.GenerateBuilds(ctx, req)
		if err != nil {
			return reportGenerationError(w, err)
		}
		output, human = set, formatBuildSetHuman(set)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(output))
	} else {
		fmt.Fprintln(w, human)
	}
	return 0
}

// reportGenerationError prints a generation failure and maps it to an exit code
func reportGenerationError(w io.Writer, err error) int {
	fmt.Fprintf(w, "Error: %v\n", err)
	if noCompatibleBuild(err) {
		return 1
	}
	return 2
}
