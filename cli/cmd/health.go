// ABOUTME: Health command for the hrg CLI
// ABOUTME: Checks backend connectivity and catalog status

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/client"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend connectivity",
	Long:  `Check connectivity to the configurator backend and report the loaded catalog.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHealth(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// runHealth prints the backend status. Exit code 2 means unreachable,
// 1 means reachable but degraded.
func runHealth(ctx context.Context, w io.Writer) int {
	url := GetAPIURL()
	resp, err := apiClient().Health(ctx)
	if resp == nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatHealthJSON(url, resp))
	} else {
		fmt.Fprintln(w, formatHealthHuman(url, resp))
	}

	if err != nil {
		return 1
	}
	return 0
}

// formatCounts renders category counts in display order
func formatCounts(counts map[models.Category]int) string {
	if len(counts) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(counts))
	for _, c := range models.AllCategories {
		if n, ok := counts[c]; ok {
			parts = append(parts, fmt.Sprintf("%s=%d", c, n))
		}
	}
	return strings.Join(parts, " ")
}

func formatHealthHuman(url string, resp *client.HealthResponse) string {
	version := resp.CatalogVersion
	if version == "" {
		version = "not loaded"
	}
	return fmt.Sprintf(`Backend:    %s
Status:     %s
Catalog:    %s
Parts:      %s
Clearance:  %s`, url, resp.Status, version, formatCounts(resp.Counts), resp.ClearancePolicy)
}

type healthReport struct {
	Backend         string                  `json:"backend"`
	Status          string                  `json:"status"`
	CatalogVersion  string                  `json:"catalog_version"`
	Counts          map[models.Category]int `json:"counts"`
	ClearancePolicy string                  `json:"clearance_policy"`
}

func formatHealthJSON(url string, resp *client.HealthResponse) string {
	return formatJSON(healthReport{
		Backend:         url,
		Status:          resp.Status,
		CatalogVersion:  resp.CatalogVersion,
		Counts:          resp.Counts,
		ClearancePolicy: resp.ClearancePolicy,
	})
}
