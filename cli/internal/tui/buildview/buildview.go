// ABOUTME: Tabbed build view showing one preference variant at a time
// ABOUTME: Renders parts, budget usage, warnings, and selection reasons

package buildview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/icons"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/styles"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/widgets"
	"github.com/shopspring/decimal"
)

const budgetBarWidth = 24

var (
	labelStyle = lipgloss.NewStyle().Foreground(styles.Muted).Width(13)
	priceStyle = lipgloss.NewStyle().Foreground(styles.Accent)
)

// View displays a build set with a tab per preference
type View struct {
	set    *models.BuildSet
	active int
	width  int
}

// New creates a build view for a set
func New(set *models.BuildSet, width int) *View {
	return &View{set: set, width: width}
}

// SetWidth updates the render width
func (v *View) SetWidth(width int) {
	v.width = width
}

// Next selects the next tab, wrapping around
func (v *View) Next() {
	if n := v.count(); n > 0 {
		v.active = (v.active + 1) % n
	}
}

// Prev selects the previous tab, wrapping around
func (v *View) Prev() {
	if n := v.count(); n > 0 {
		v.active = (v.active - 1 + n) % n
	}
}

// Select jumps to the tab for p and reports whether it exists
func (v *View) Select(p models.Preference) bool {
	if v.set == nil {
		return false
	}
	for i := range v.set.Builds {
		if v.set.Builds[i].Preference == p {
			v.active = i
			return true
		}
	}
	return false
}

// Active returns the build on the selected tab
func (v *View) Active() *models.Build {
	if v.count() == 0 {
		return nil
	}
	return &v.set.Builds[v.active]
}

func (v *View) count() int {
	if v.set == nil {
		return 0
	}
	return len(v.set.Builds)
}

// View renders the tabs and the active build
func (v *View) View() string {
	b := v.Active()
	if b == nil {
		return "No builds"
	}

	var sb strings.Builder

	sb.WriteString(v.renderTabs())
	sb.WriteString("\n\n")

	sb.WriteString(styles.Subtitle.Render(fmt.Sprintf("%s Budget  %s %s", icons.Budget.String(), b.UseCase, b.Resolution)))
	sb.WriteString("\n")
	pct := spentPercent(b)
	sb.WriteString(styles.BudgetBar(pct, budgetBarWidth))
	sb.WriteString(fmt.Sprintf(" $%s of $%s (%.0f%%)\n", b.TotalPrice.StringFixed(2), b.Budget.StringFixed(2), pct))
	sb.WriteString(fmt.Sprintf("Estimated draw: %s\n\n", styles.Value.Render(fmt.Sprintf("~%dW", b.EstimatedWattage))))

	sb.WriteString(renderParts(b))

	if len(b.Warnings) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusWarning.Render("Warnings"))
		sb.WriteString("\n")
		for _, w := range b.Warnings {
			sb.WriteString("  " + widgets.StatusText(w.Message(), widgets.LevelForSeverity(w.Severity)) + "\n")
		}
	}

	if len(b.Reasons) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.Subtitle.Render("Why these parts"))
		sb.WriteString("\n")
		for _, r := range b.Reasons {
			sb.WriteString("  • " + r.Message() + "\n")
		}
	}

	return lipgloss.NewStyle().Width(v.width).Render(strings.TrimRight(sb.String(), "\n"))
}

func (v *View) renderTabs() string {
	tabs := make([]string, 0, v.count())
	for i := range v.set.Builds {
		b := &v.set.Builds[i]
		label := widgets.StatusIcon(widgets.LevelForBuild(b)) + " " + strings.ToUpper(string(b.Preference))
		if i == v.active {
			tabs = append(tabs, styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, styles.InactiveTab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderParts(b *models.Build) string {
	var sb strings.Builder
	for _, p := range b.Parts.Summaries() {
		outcome := ""
		if o, ok := b.Outcome(p.Category); ok && o != models.OutcomeIdeal {
			outcome = " " + widgets.OutcomeBadge(o)
		}
		sb.WriteString(fmt.Sprintf("%s %s %-36s %s%s\n",
			icons.ForCategory(p.Category).String(),
			labelStyle.Render(styles.CategoryLabel(p.Category)),
			p.Name,
			priceStyle.Render("$"+p.Price.StringFixed(2)),
			outcome))
	}
	return sb.String()
}

// spentPercent is the share of the budget a build spends.
// A zero budget counts any spending as over budget.
func spentPercent(b *models.Build) float64 {
	if b.Budget.IsZero() {
		if b.TotalPrice.IsZero() {
			return 0
		}
		return 200
	}
	pct, _ := b.TotalPrice.Div(b.Budget).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}
