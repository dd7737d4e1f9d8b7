// ABOUTME: Human-readable rendering of builds and share payloads
// ABOUTME: Uses the shared lipgloss styles so CLI output matches the TUI

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/sharecode"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/styles"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(styles.Muted).Width(13)
	priceStyle   = lipgloss.NewStyle().Foreground(styles.Accent)
)

// formatPartLines renders one line per part in display order
func formatPartLines(parts []models.PartSummary) string {
	var sb strings.Builder
	for _, p := range parts {
		fmt.Fprintf(&sb, "  %s %-40s %s\n", labelStyle.Render(styles.CategoryLabel(p.Category)), p.Name, priceStyle.Render("$"+p.Price.StringFixed(2)))
	}
	return sb.String()
}

// formatBuildHuman renders a build with parts, warnings, and reasons
func formatBuildHuman(b *models.Build) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s  $%s of $%s  ~%dW  %s %s\n",
		headingStyle.Render(strings.ToUpper(string(b.Preference))),
		b.TotalPrice.StringFixed(2), b.Budget.StringFixed(2), b.EstimatedWattage,
		b.UseCase, b.Resolution)
	sb.WriteString(formatPartLines(b.Parts.Summaries()))

	if len(b.Warnings) > 0 {
		sb.WriteString("Warnings:\n")
		for _, w := range b.Warnings {
			symbol := styles.StatusWarning.Render("!")
			if w.Severity == models.SeverityCritical {
				symbol = styles.StatusCritical.Render("✗")
			}
			fmt.Fprintf(&sb, "  %s %s\n", symbol, w.Message())
		}
	}
	if len(b.Reasons) > 0 {
		sb.WriteString("Why:\n")
		for _, r := range b.Reasons {
			fmt.Fprintf(&sb, "  • %s\n", r.Message())
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatBuildSetHuman renders every build of a set separated by blank lines
func formatBuildSetHuman(set *models.BuildSet) string {
	blocks := make([]string, 0, len(set.Builds)+1)
	if set.CatalogVersion != "" {
		blocks = append(blocks, styles.Help.Render("Catalog "+set.CatalogVersion))
	}
	for i := range set.Builds {
		blocks = append(blocks, formatBuildHuman(&set.Builds[i]))
	}
	return strings.Join(blocks, "\n\n")
}

// formatSharedHuman renders decoded share token builds
func formatSharedHuman(builds []sharecode.Build) string {
	blocks := make([]string, 0, len(builds))
	for _, b := range builds {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s  $%s of $%s  ~%dW  %s %s\n",
			headingStyle.Render(strings.ToUpper(string(b.Preference))),
			b.TotalPrice.StringFixed(2), b.Budget.StringFixed(2), b.EstimatedWattage,
			b.UseCase, b.Resolution)
		sb.WriteString(formatPartLines(b.Parts))
		blocks = append(blocks, strings.TrimRight(sb.String(), "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

// formatJSON marshals any response for --json output
func formatJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(data)
}
