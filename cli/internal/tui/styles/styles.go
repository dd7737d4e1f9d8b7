// ABOUTME: Shared lipgloss palette and styles for the hrg CLI and TUI
// ABOUTME: Also labels part categories and draws the budget bar

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
)

// Palette
var (
	Primary   = lipgloss.Color("#7C3AED") // purple
	Accent    = lipgloss.Color("#8B5CF6") // lighter purple
	Secondary = lipgloss.Color("#10B981") // green
	Warning   = lipgloss.Color("#F59E0B") // amber
	Danger    = lipgloss.Color("#EF4444") // red
	Muted     = lipgloss.Color("#6B7280")
	Subtle    = lipgloss.Color("#9CA3AF")
	Text      = lipgloss.Color("#F9FAFB")
	Surface   = lipgloss.Color("#374151")
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary).MarginBottom(1)
	Subtitle = lipgloss.NewStyle().Foreground(Muted).MarginBottom(1)
	Help     = lipgloss.NewStyle().Foreground(Muted).MarginTop(1)
	Value    = lipgloss.NewStyle().Foreground(Text).Bold(true)

	StatusOK       = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	StatusWarning  = lipgloss.NewStyle().Foreground(Warning).Bold(true)
	StatusCritical = lipgloss.NewStyle().Foreground(Danger).Bold(true)

	Panel       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Muted).Padding(1, 2)
	ActivePanel = Panel.BorderForeground(Primary)

	// Build variant tabs
	ActiveTab   = lipgloss.NewStyle().Foreground(Text).Background(Primary).Bold(true).Padding(0, 2)
	InactiveTab = lipgloss.NewStyle().Foreground(Muted).Background(Surface).Padding(0, 2)
)

var categoryLabels = map[models.Category]string{
	models.CategoryCPU:         "CPU",
	models.CategoryGPU:         "GPU",
	models.CategoryMotherboard: "Motherboard",
	models.CategoryMemory:      "Memory",
	models.CategoryStorage:     "Storage",
	models.CategoryPSU:         "Power supply",
	models.CategoryCase:        "Case",
	models.CategoryCooler:      "Cooler",
}

// CategoryLabel returns the display label of a part category
func CategoryLabel(c models.Category) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return strings.ToUpper(string(c))
}

// BudgetColor is green below 95% of budget, amber up to 100% and red beyond.
func BudgetColor(percent float64) lipgloss.Color {
	switch {
	case percent > 100:
		return Danger
	case percent >= 95:
		return Warning
	default:
		return Secondary
	}
}

// BudgetBar draws width cells, filled in proportion to the share of budget spent.
func BudgetBar(percent float64, width int) string {
	filled := min(max(int(percent/100*float64(width)), 0), width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(BudgetColor(percent)).Render(bar)
}
