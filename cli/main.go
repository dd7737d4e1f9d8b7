// ABOUTME: Entry point for the hrg CLI
// ABOUTME: Command-line tool for PC build recommendations and catalog CI checks

package main

import (
	"fmt"
	"os"

	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
