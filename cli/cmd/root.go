// ABOUTME: Root command for the hrg CLI
// ABOUTME: Global flags, API endpoint resolution and the shared client constructor

package cmd

import (
	"os"
	"strings"

	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/client"
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X .../cli/cmd.Version=v1.2.3"
var Version = "dev"

var (
	apiURL     string
	jsonOutput bool
)

const (
	defaultAPIURL = "http://localhost:8080"
	apiURLEnv     = "HRG_API_URL"
)

var rootCmd = &cobra.Command{
	Use:   "hrg",
	Short: "CLI for the HRG PC build configurator",
	Long: `hrg recommends value, balanced and max PC builds for a budget, use case and resolution.

Builds are generated by the configurator backend, or locally with --catalog.
The check command sweeps sample requests against a catalog so CI can gate catalog changes.

Environment Variables:
  HRG_API_URL  Backend API URL (default: http://localhost:8080)`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides "+apiURLEnv+")")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL picks --api-url, then HRG_API_URL, then the default, without a trailing slash
func GetAPIURL() string {
	url := apiURL
	if url == "" {
		url = os.Getenv(apiURLEnv)
	}
	if url = strings.TrimRight(strings.TrimSpace(url), "/"); url == "" {
		return defaultAPIURL
	}
	return url
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

func apiClient() *client.Client {
	return client.New(GetAPIURL())
}
