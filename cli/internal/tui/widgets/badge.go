// ABOUTME: Status widgets for builds, warnings and part selection outcomes
// ABOUTME: One table maps each level to its colors, label and icon

package widgets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/icons"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/styles"
)

// StatusLevel ranks how much attention something needs
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusNeutral
)

type levelStyle struct {
	label string
	bg    lipgloss.Color
	fg    lipgloss.Color
	icon  icons.Icon
}

var levelStyles = map[StatusLevel]levelStyle{
	StatusOK:       {"OK", styles.Secondary, "#FFFFFF", icons.CheckOK},
	StatusWarning:  {"WARN", styles.Warning, "#000000", icons.Warning},
	StatusCritical: {"CRIT", styles.Danger, "#FFFFFF", icons.Critical},
}

var neutral = levelStyle{"--", styles.Muted, "#FFFFFF", icons.Icon{NerdFont: "•", Fallback: "•"}}

func styleFor(level StatusLevel) levelStyle {
	if s, ok := levelStyles[level]; ok {
		return s
	}
	return neutral
}

// Badge renders text on the level's background
func Badge(text string, level StatusLevel) string {
	s := styleFor(level)
	return lipgloss.NewStyle().Background(s.bg).Foreground(s.fg).Padding(0, 1).Bold(true).Render(text)
}

// StatusBadge renders the level's short label as a badge
func StatusBadge(level StatusLevel) string {
	return Badge(styleFor(level).label, level)
}

// StatusIcon renders the level's icon in its color
func StatusIcon(level StatusLevel) string {
	s := styleFor(level)
	return lipgloss.NewStyle().Foreground(s.bg).Render(s.icon.String())
}

// StatusText renders text in the level's color, preceded by its icon
func StatusText(text string, level StatusLevel) string {
	return StatusIcon(level) + " " + lipgloss.NewStyle().Foreground(styleFor(level).bg).Render(text)
}

// LevelForSeverity maps a warning severity to a status level
func LevelForSeverity(s models.Severity) StatusLevel {
	if s == models.SeverityCritical {
		return StatusCritical
	}
	return StatusWarning
}

// LevelForOutcome maps a selection outcome to a status level
func LevelForOutcome(o models.Outcome) StatusLevel {
	switch o {
	case models.OutcomeIdeal:
		return StatusOK
	case models.OutcomeRelaxed:
		return StatusWarning
	case models.OutcomeDegraded:
		return StatusCritical
	}
	return StatusNeutral
}

// OutcomeBadge renders the outcome of a part selection
func OutcomeBadge(o models.Outcome) string {
	return Badge(string(o), LevelForOutcome(o))
}

// LevelForBuild returns the worst warning level of a build
func LevelForBuild(b *models.Build) StatusLevel {
	switch {
	case b.HasCritical():
		return StatusCritical
	case len(b.Warnings) > 0:
		return StatusWarning
	}
	return StatusOK
}
