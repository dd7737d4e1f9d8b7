// ABOUTME: Comparison view showing the value, balanced, and max builds side by side
// ABOUTME: Displays totals, wattage, headline parts, and price deltas

package comparison

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/styles"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/widgets"
)

// Comparison displays every build of a set in columns
type Comparison struct {
	set   *models.BuildSet
	width int
}

// New creates a new comparison view
func New(set *models.BuildSet, width int) *Comparison {
	return &Comparison{
		set:   set,
		width: width,
	}
}

// View renders the comparison
func (c *Comparison) View() string {
	if c.set == nil || len(c.set.Builds) == 0 {
		return "No builds to compare"
	}

	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Build Comparison"))
	sb.WriteString("\n\n")

	n := len(c.set.Builds)
	colWidth := max((c.width-2*(n-1))/n, 16)

	columns := make([][]string, n)
	maxLines := 0
	for i := range c.set.Builds {
		columns[i] = strings.Split(c.renderBuild(&c.set.Builds[i], colWidth), "\n")
		maxLines = max(maxLines, len(columns[i]))
	}

	cell := lipgloss.NewStyle().Width(colWidth).MaxWidth(colWidth)
	for line := 0; line < maxLines; line++ {
		row := make([]string, n)
		for i, col := range columns {
			if line < len(col) {
				row[i] = cell.Render(col[line])
			} else {
				row[i] = cell.Render("")
			}
		}
		sb.WriteString(strings.Join(row, "  "))
		sb.WriteString("\n")
	}

	// Delta section, relative to the cheapest build
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render("Price over value"))
	sb.WriteString("\n")
	base := c.set.Builds[0].TotalPrice
	for i := 1; i < n; i++ {
		b := &c.set.Builds[i]
		delta := b.TotalPrice.Sub(base)
		deltaStyle := styles.StatusOK
		if delta.IsPositive() {
			deltaStyle = styles.StatusWarning
		}
		sb.WriteString(fmt.Sprintf("  %s: %s\n",
			strings.ToUpper(string(b.Preference)),
			deltaStyle.Render(signedDollars(delta.StringFixed(2)))))
	}

	return lipgloss.NewStyle().Width(c.width).Render(strings.TrimRight(sb.String(), "\n"))
}

func (c *Comparison) renderBuild(b *models.Build, width int) string {
	var sb strings.Builder
	sb.WriteString(styles.Subtitle.Render(strings.ToUpper(string(b.Preference))))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Total: $%s\n", b.TotalPrice.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Draw: ~%dW\n", b.EstimatedWattage))
	sb.WriteString(fmt.Sprintf("CPU: %s\n", truncate(b.Parts.CPU.Name, width-5)))
	sb.WriteString(fmt.Sprintf("GPU: %s\n", truncate(b.Parts.GPU.Name, width-5)))
	sb.WriteString(fmt.Sprintf("PSU: %s\n", truncate(b.Parts.PSU.Name, width-5)))

	level := widgets.LevelForBuild(b)
	switch {
	case len(b.Warnings) == 0:
		sb.WriteString(widgets.StatusText("No warnings", level))
	case len(b.Warnings) == 1:
		sb.WriteString(widgets.StatusText("1 warning", level))
	default:
		sb.WriteString(widgets.StatusText(fmt.Sprintf("%d warnings", len(b.Warnings)), level))
	}
	return sb.String()
}

func signedDollars(amount string) string {
	if strings.HasPrefix(amount, "-") {
		return "-$" + amount[1:]
	}
	return "+$" + amount
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width < 2 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
