// ABOUTME: Build request wizard as a bubbletea model
// ABOUTME: Uses huh forms with visual progress indicator for step navigation

package wizard

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/icons"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/styles"
	"github.com/shopspring/decimal"
)

// WizardCompleteMsg is sent when the wizard finishes successfully
type WizardCompleteMsg struct {
	Request models.BuildSetRequest
}

// WizardCancelledMsg is sent when the wizard is cancelled
type WizardCancelledMsg struct{}

// Wizard collects a build request as a bubbletea model
type Wizard struct {
	request models.BuildSetRequest
	form    *huh.Form
	step    int
	width   int

	// Form field values (strings for huh)
	budget     string
	useCase    string
	resolution string
}

// Step names for progress indicator
var stepNames = []string{"Budget", "Use Case", "Resolution"}

var useCaseOptions = []huh.Option[string]{
	huh.NewOption("Gaming", string(models.UseCaseGaming)),
	huh.NewOption("General use", string(models.UseCaseGeneral)),
	huh.NewOption("Minecraft", string(models.UseCaseMinecraft)),
	huh.NewOption("Roblox", string(models.UseCaseRoblox)),
}

var resolutionOptions = []huh.Option[string]{
	huh.NewOption("1080p", "1080"),
	huh.NewOption("1440p", "1440"),
}

// DefaultRequest is the starting point when no previous request exists
func DefaultRequest() models.BuildSetRequest {
	return models.BuildSetRequest{
		Budget:     decimal.NewFromInt(1000),
		UseCase:    models.UseCaseGaming,
		Resolution: models.Resolution1080,
	}
}

// New creates a new wizard prefilled from a previous request, or defaults when nil
func New(previous *models.BuildSetRequest) *Wizard {
	req := DefaultRequest()
	if previous != nil && previous.Validate() == nil && previous.Budget.IsPositive() {
		req = *previous
	}

	w := &Wizard{
		request:    req,
		step:       1,
		budget:     req.Budget.String(),
		useCase:    string(req.UseCase),
		resolution: strconv.Itoa(int(req.Resolution)),
	}
	w.form = w.createStep1Form()
	return w
}

func (w *Wizard) createStep1Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Total budget (USD)").
				Description("Type an amount and press Enter to continue").
				Placeholder("e.g., 1000").
				CharLimit(9).
				Value(&w.budget).
				Validate(validateBudget),
		).Title("Step 1: Budget").
			Description("How much do you want to spend on the whole machine?"),
	).WithTheme(styles.FormTheme())
}

func (w *Wizard) createStep2Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Use case").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(useCaseOptions...).
				Value(&w.useCase),
		).Title("Step 2: Use Case").
			Description("What will the machine mostly run?"),
	).WithTheme(styles.FormTheme())
}

func (w *Wizard) createStep3Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Monitor resolution").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(resolutionOptions...).
				Value(&w.resolution),
		).Title("Step 3: Resolution").
			Description("The GPU is ranked by performance per dollar at this resolution"),
	).WithTheme(styles.FormTheme())
}

// Init implements tea.Model
func (w *Wizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		form, cmd := w.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			w.form = f
		}
		return w, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return w, func() tea.Msg { return WizardCancelledMsg{} }
		}
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		return w.advanceStep()
	}

	return w, cmd
}

func (w *Wizard) advanceStep() (tea.Model, tea.Cmd) {
	switch w.step {
	case 1:
		w.request.Budget, _ = parseBudget(w.budget)
		w.step = 2
		w.form = w.createStep2Form()
		return w, w.form.Init()

	case 2:
		w.request.UseCase = models.UseCase(w.useCase)
		w.step = 3
		w.form = w.createStep3Form()
		return w, w.form.Init()

	case 3:
		res, _ := strconv.Atoi(w.resolution)
		w.request.Resolution = models.Resolution(res)

		req := w.request
		return w, func() tea.Msg {
			return WizardCompleteMsg{Request: req}
		}
	}

	return w, nil
}

// SetWidth sets the wizard width for proper rendering
func (w *Wizard) SetWidth(width int) {
	w.width = width
}

// Step returns the current step number
func (w *Wizard) Step() int {
	return w.step
}

// Request returns the request collected so far
func (w *Wizard) Request() models.BuildSetRequest {
	return w.request
}

// View implements tea.Model
func (w *Wizard) View() string {
	var sb strings.Builder

	sb.WriteString(w.renderProgress())
	sb.WriteString("\n\n")
	sb.WriteString(w.form.View())

	return sb.String()
}

// summary is what a finished step collected, shown beside its name
func (w *Wizard) summary(step int) string {
	switch step {
	case 1:
		return "$" + w.request.Budget.String()
	case 2:
		return string(w.request.UseCase)
	case 3:
		return fmt.Sprintf("%dp", w.request.Resolution)
	}
	return ""
}

// renderProgress draws the step trail and a bar filled per completed step
func (w *Wizard) renderProgress() string {
	width := max(w.width-1, 60)
	muted := lipgloss.NewStyle().Foreground(styles.Muted)
	current := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	done := lipgloss.NewStyle().Foreground(styles.Secondary)

	trail := make([]string, len(stepNames))
	for i, name := range stepNames {
		step := i + 1
		switch {
		case step < w.step:
			trail[i] = done.Render(icons.CheckOK.String()) + " " + muted.Render(name+" "+w.summary(step))
		case step == w.step:
			trail[i] = current.Render("● " + name)
		default:
			trail[i] = muted.Render("○ " + name)
		}
	}

	inner := width - 4
	filled := (w.step - 1) * inner / len(stepNames)
	bar := current.Render(strings.Repeat("━", filled)) + muted.Render(strings.Repeat("─", inner-filled))

	heading := fmt.Sprintf("Progress  step %d of %d", w.step, len(stepNames))
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		Width(width-2).
		Padding(0, 1).
		Render(current.Render(heading) + "\n" + strings.Join(trail, "    ") + "\n" + bar)
}

func parseBudget(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimPrefix(strings.TrimSpace(s), "$"))
}

func validateBudget(s string) error {
	v, err := parseBudget(s)
	if err != nil || !v.IsPositive() {
		return fmt.Errorf("must be a positive amount")
	}
	return nil
}
