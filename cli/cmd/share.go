// ABOUTME: Share commands for the hrg CLI
// ABOUTME: Creates, encodes, and decodes compact share tokens for build sets

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/services"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/sharecode"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/client"
	"github.com/spf13/cobra"
)

var (
	shareFile        string
	sharePreferences []string
	shareRemote      bool
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Create and read build share tokens",
}

var shareCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate builds on the backend and return a share token",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runShareCreate(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var shareEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode builds from a generate --json file into a share token",
	Run: func(cmd *cobra.Command, args []string) {
		if code := runShareEncode(os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var shareDecodeCmd = &cobra.Command{
	Use:   "decode <token>",
	Short: "Show the builds carried by a share token",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runShareDecode(ctx, os.Stdout, args[0]); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
	shareCmd.AddCommand(shareCreateCmd, shareEncodeCmd, shareDecodeCmd)

	addRequestFlags(shareCreateCmd)
	shareCreateCmd.Flags().StringSliceVar(&sharePreferences, "preferences", nil, "Builds to include (default all)")
	shareEncodeCmd.Flags().StringVar(&shareFile, "file", "", "JSON file written by generate --json")
	_ = shareEncodeCmd.MarkFlagRequired("file")
	shareDecodeCmd.Flags().BoolVar(&shareRemote, "remote", false, "Decode through the backend instead of locally")
}

// runShareCreate asks the backend to generate and encode builds
func runShareCreate(ctx context.Context, w io.Writer) int {
	req, err := parseBuildSetRequest(genBudget, genUseCase, genResolution)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	prefs := make([]models.Preference, 0, len(sharePreferences))
	for _, s := range sharePreferences {
		p, err := models.ParsePreference(s)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		prefs = append(prefs, p)
	}

	resp, err := apiClient().CreateShare(ctx, client.ShareRequest{BuildSetRequest: req, Preferences: prefs})
	if err != nil {
		return reportGenerationError(w, err)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(resp))
	} else {
		fmt.Fprintln(w, resp.Token)
	}
	return 0
}

// readBuilds accepts a build set, a single build, or a list of builds
func readBuilds(data []byte) ([]models.Build, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var builds []models.Build
		if err := json.Unmarshal(data, &builds); err != nil {
			return nil, fmt.Errorf("decoding builds: %w", err)
		}
		return builds, nil
	}

	var probe struct {
		Builds     json.RawMessage   `json:"builds"`
		Preference models.Preference `json:"preference"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decoding builds: %w", err)
	}
	switch {
	case probe.Builds != nil:
		var set models.BuildSet
		if err := json.Unmarshal(data, &set); err != nil {
			return nil, fmt.Errorf("decoding build set: %w", err)
		}
		return set.Builds, nil
	case probe.Preference != "":
		var b models.Build
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("decoding build: %w", err)
		}
		return []models.Build{b}, nil
	default:
		return nil, fmt.Errorf("no builds found in file")
	}
}

// runShareEncode encodes builds from a file without contacting the backend
func runShareEncode(w io.Writer) int {
	data, err := os.ReadFile(shareFile)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	builds, err := readBuilds(data)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	token, err := sharecode.Encode(builds)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(map[string]string{"token": token, "path": "/api/v1/share/" + token}))
	} else {
		fmt.Fprintln(w, token)
	}
	return 0
}

// runShareDecode decodes a token locally or through the backend
func runShareDecode(ctx context.Context, w io.Writer, token string) int {
	token = strings.TrimSpace(token)
	if err := services.ValidateShareToken(token); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	var builds []sharecode.Build
	if shareRemote {
		shared, err := apiClient().DecodeShare(ctx, token)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		builds = shared.Builds
	} else {
		decoded, err := sharecode.Decode(token)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		builds = decoded
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(client.SharedBuilds{Builds: builds}))
	} else {
		fmt.Fprintln(w, formatSharedHuman(builds))
	}
	return 0
}
