// ABOUTME: Interactive command for the hrg CLI
// ABOUTME: Starts the TUI wizard, optionally reopening a recent request first

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/menu"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/recent"
	"github.com/spf13/cobra"
)

var (
	tuiCatalog   string
	tuiClearance string
	tuiFresh     bool
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"tui"},
	Short:   "Build a PC interactively",
	Long: `Start the interactive configurator.

A wizard asks for budget, use case and resolution, then shows the value, balanced
and max builds as tabs. Recent requests are kept under $XDG_CONFIG_HOME/hrg and can
be reopened from the start menu.`,
	Example: `  hrg interactive
  hrg interactive --catalog data/catalog.json`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runInteractive(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
	interactiveCmd.Flags().StringVar(&tuiCatalog, "catalog", "", "Generate locally against a catalog file (JSON or YAML)")
	interactiveCmd.Flags().StringVar(&tuiClearance, "clearance", "warn", "Local clearance policy (warn, research)")
	interactiveCmd.Flags().BoolVar(&tuiFresh, "fresh", false, "Skip the start menu and open the wizard with defaults")
}

// runInteractive starts the TUI and returns exit code
func runInteractive(w io.Writer) int {
	source, err := newBuildSource(tuiCatalog, tuiClearance)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	recents := recent.New(recent.DefaultConfigDir())
	initial, err := startRequest(recents, tuiFresh)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if err := tui.Run(source, recents, initial); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	return 0
}

// startRequest picks the request that prefills the wizard
func startRequest(recents *recent.Requests, fresh bool) (*models.BuildSetRequest, error) {
	if fresh {
		return nil, nil
	}
	return menu.New(recents.List()).Run()
}
