// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Manages screen state and routes keyboard input to child components

package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/client"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/buildview"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/comparison"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/debuglog"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/icons"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/menu"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/recent"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/styles"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/wizard"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenWizard Screen = iota
	ScreenLoading
	ScreenBuilds
	ScreenComparison
	ScreenError
)

// Layout constants
const (
	minTerminalWidth = 80  // Minimum frame width
	wideLayoutWidth  = 110 // Width at which the actions pane is shown beside the builds
	actionsPaneWidth = 28
	panelPadding     = 4 // Total horizontal padding from panel borders (2 each side)
	generateTimeout  = 30 * time.Second
)

// Source generates the three build variants for a request
type Source interface {
	GenerateBuilds(ctx context.Context, req models.BuildSetRequest) (*models.BuildSet, error)
}

// buildsLoadedMsg is sent when generation completes
type buildsLoadedMsg struct {
	set *models.BuildSet
	err error
}

// App is the root model for the TUI
type App struct {
	source     Source
	recents    *recent.Requests
	screen     Screen
	width      int
	height     int
	err        error
	request    *models.BuildSetRequest
	set        *models.BuildSet
	lastUpdate time.Time

	// Child models
	wizardScreen *wizard.Wizard
	builds       *buildview.View
	compView     *comparison.Comparison
	spinner      spinner.Model
}

// New creates a new TUI application that opens on the wizard.
// initial prefills the wizard; nil uses defaults.
func New(source Source, recents *recent.Requests, initial *models.BuildSetRequest) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return &App{
		source:       source,
		recents:      recents,
		screen:       ScreenWizard,
		wizardScreen: wizard.New(initial),
		spinner:      s,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	if a.wizardScreen != nil {
		return a.wizardScreen.Init()
	}
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.builds != nil {
			a.builds.SetWidth(a.buildsWidth())
		}
		if a.set != nil {
			a.compView = comparison.New(a.set, a.frameWidth()-panelPadding-2)
		}
		if a.wizardScreen != nil {
			return a.updateWizard(msg)
		}
		return a, nil

	case tea.KeyMsg:
		// Handle global quit
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Route to current screen
		switch a.screen {
		case ScreenWizard:
			return a.updateWizard(msg)
		case ScreenBuilds:
			return a.updateBuilds(msg)
		case ScreenComparison:
			return a.updateComparison(msg)
		case ScreenError:
			return a.updateError(msg)
		}
		return a, nil

	case wizard.WizardCompleteMsg:
		a.wizardScreen = nil
		return a, a.submit(msg.Request)

	case wizard.WizardCancelledMsg:
		a.wizardScreen = nil
		if a.set == nil {
			return a, tea.Quit
		}
		a.screen = ScreenBuilds
		return a, nil

	case buildsLoadedMsg:
		if msg.err != nil {
			debuglog.Error("generate builds", msg.err, "request", a.requestLabel())
			a.err = msg.err
			a.screen = ScreenError
			return a, nil
		}
		a.err = nil
		a.set = msg.set
		a.lastUpdate = time.Now()
		a.builds = buildview.New(a.set, a.buildsWidth())
		a.compView = comparison.New(a.set, a.frameWidth()-panelPadding-2)
		a.screen = ScreenBuilds
		debuglog.Info("builds generated", "request", a.requestLabel(), "catalog", a.set.CatalogVersion)
		return a, nil

	case spinner.TickMsg:
		if a.screen != ScreenLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	default:
		// Forward unknown messages to wizard when active (needed for huh form internals)
		if a.screen == ScreenWizard && a.wizardScreen != nil {
			return a.updateWizard(msg)
		}
	}

	return a, nil
}

func (a *App) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.wizardScreen == nil {
		return a, nil
	}
	model, cmd := a.wizardScreen.Update(msg)
	a.wizardScreen = model.(*wizard.Wizard)
	return a, cmd
}

func (a *App) updateBuilds(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "n":
		return a, a.runWizard()
	case "c":
		if a.compView != nil {
			a.screen = ScreenComparison
		}
	case "right", "l", "tab":
		if a.builds != nil {
			a.builds.Next()
		}
	case "left", "h", "shift+tab":
		if a.builds != nil {
			a.builds.Prev()
		}
	case "1":
		a.selectPreference(models.PreferenceValue)
	case "2":
		a.selectPreference(models.PreferenceBalanced)
	case "3":
		a.selectPreference(models.PreferenceMax)
	}
	return a, nil
}

func (a *App) updateComparison(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "b", "esc", "c":
		a.screen = ScreenBuilds
	case "n":
		return a, a.runWizard()
	}
	return a, nil
}

func (a *App) updateError(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "n":
		return a, a.runWizard()
	case "r":
		if a.request != nil {
			return a, a.submit(*a.request)
		}
	case "b":
		if a.set != nil {
			a.screen = ScreenBuilds
		}
	}
	return a, nil
}

func (a *App) selectPreference(p models.Preference) {
	if a.builds != nil {
		a.builds.Select(p)
	}
}

// submit records the request and starts generation
func (a *App) submit(req models.BuildSetRequest) tea.Cmd {
	a.request = &req
	a.screen = ScreenLoading
	if a.recents != nil {
		if err := a.recents.Add(req); err != nil {
			debuglog.Error("save recent request", err)
		}
	}
	return tea.Batch(a.spinner.Tick, a.generate(req))
}

// generate creates a command that asks the source for a build set
func (a *App) generate(req models.BuildSetRequest) tea.Cmd {
	source := a.source
	return func() tea.Msg {
		if source == nil {
			return buildsLoadedMsg{err: errors.New("no build source configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()
		set, err := source.GenerateBuilds(ctx, req)
		return buildsLoadedMsg{set: set, err: err}
	}
}

// runWizard transitions to the wizard screen prefilled with the last request
func (a *App) runWizard() tea.Cmd {
	a.wizardScreen = wizard.New(a.request)
	a.wizardScreen.SetWidth(a.width)
	a.screen = ScreenWizard
	return a.wizardScreen.Init()
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenWizard:
		content = a.viewWizard()
	case ScreenLoading:
		content = a.viewLoading()
	case ScreenBuilds:
		content = a.viewBuilds()
	case ScreenComparison:
		content = a.viewComparison()
	case ScreenError:
		content = a.viewError()
	}

	return a.wrapWithFrame(content)
}

// viewWizard renders the wizard screen
func (a *App) viewWizard() string {
	if a.wizardScreen != nil {
		return a.wizardScreen.View()
	}
	return ""
}

// viewLoading renders the spinner while builds are generated
func (a *App) viewLoading() string {
	return styles.Panel.Width(a.frameWidth() - panelPadding).Render(
		a.spinner.View() + " Generating builds for " + a.requestLabel() + "...")
}

// viewBuilds renders the tabbed builds with an actions pane on wide terminals
func (a *App) viewBuilds() string {
	if a.builds == nil {
		return styles.Panel.Width(a.frameWidth() - panelPadding).Render("No builds")
	}

	leftPane := styles.ActivePanel.Width(a.buildsWidth()).Render(a.builds.View())
	if a.width < wideLayoutWidth {
		return leftPane
	}

	rightContent := styles.Title.Render(icons.Wizard.String()+" Actions") + "\n\n"
	rightContent += icons.Info.String() + " Switch build variant\n"
	rightContent += icons.Budget.String() + " Compare all three\n"
	rightContent += icons.Back.String() + " New request\n"
	rightContent += icons.Quit.String() + " Quit application\n"
	if a.set != nil && a.set.CatalogVersion != "" {
		rightContent += "\n" + styles.Help.Render("Catalog "+a.set.CatalogVersion)
	}
	rightPane := styles.Panel.Width(actionsPaneWidth).Render(rightContent)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
}

// viewComparison renders every build side by side
func (a *App) viewComparison() string {
	if a.compView == nil {
		return ""
	}
	return styles.ActivePanel.Width(a.frameWidth() - panelPadding).Render(a.compView.View())
}

// viewError renders a generation failure
func (a *App) viewError() string {
	title := "Build generation failed"
	if noCompatibleBuild(a.err) {
		title = "No compatible build"
	}

	var sb strings.Builder
	sb.WriteString(styles.StatusCritical.Render(icons.Critical.String() + " " + title))
	sb.WriteString("\n\n")
	if a.err != nil {
		sb.WriteString(a.err.Error())
	}
	if noCompatibleBuild(a.err) {
		sb.WriteString("\n\n")
		sb.WriteString(styles.Help.Render("Try a larger budget or a different use case."))
	}
	return styles.Panel.Width(a.frameWidth() - panelPadding).Render(sb.String())
}

// noCompatibleBuild reports whether err means the catalog could not satisfy a request
func noCompatibleBuild(err error) bool {
	return errors.Is(err, models.ErrExhausted) || client.IsStatus(err, http.StatusUnprocessableEntity)
}

// frameWidth is the terminal width minus one column, clamped to the minimum
func (a *App) frameWidth() int {
	return max(a.width-1, minTerminalWidth)
}

// buildsWidth calculates the width for the builds pane
func (a *App) buildsWidth() int {
	w := a.frameWidth() - panelPadding
	if a.width < wideLayoutWidth {
		return w
	}
	return w - actionsPaneWidth - panelPadding
}

func (a *App) requestLabel() string {
	if a.request == nil {
		return ""
	}
	return menu.Describe(*a.request)
}

// renderHeader creates the header bar with app branding and context
func (a *App) renderHeader() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s ", icons.App.String(), titleStyle.Render("HRG Configurator"))

	rightText := ""
	if a.request != nil && a.screen != ScreenWizard {
		rightText = " " + contextStyle.Render(a.requestLabel()) + " "
	}

	fillWidth := max(0, width-4-lipgloss.Width(leftText)-lipgloss.Width(rightText)) // -4 for ╭─ and ─╮
	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"

	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	// Build keyboard shortcuts based on current screen
	var shortcuts []string
	switch a.screen {
	case ScreenWizard:
		shortcuts = []string{"↑↓ Select", "Enter Confirm", "Esc Cancel"}
	case ScreenLoading:
		shortcuts = []string{"ctrl+c Quit"}
	case ScreenBuilds:
		shortcuts = []string{"←→ Variant", "c Compare", "n New", "q Quit"}
	case ScreenComparison:
		shortcuts = []string{"b Back", "n New", "q Quit"}
	case ScreenError:
		shortcuts = []string{"r Retry", "n New", "q Quit"}
	}

	// Build styled shortcuts
	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ") + " "

	// Right side status (time since generation)
	rightText := ""
	if !a.lastUpdate.IsZero() && (a.screen == ScreenBuilds || a.screen == ScreenComparison) {
		rightText = " " + statusStyle.Render("Generated "+formatTimeSince(a.lastUpdate)) + " "
	}

	fillWidth := max(0, width-4-lipgloss.Width(leftText)-lipgloss.Width(rightText)) // -4 for ╰─ and ─╯
	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╯"

	return borderStyle.Render(footer)
}

// formatTimeSince formats a duration since the given time in human-readable form
func formatTimeSince(t time.Time) string {
	d := time.Since(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}

	if d < time.Hour {
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}

	return fmt.Sprintf("%dh ago", int(d.Hours()))
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI
func Run(source Source, recents *recent.Requests, initial *models.BuildSetRequest) error {
	if recents != nil {
		if err := debuglog.Init(recent.DefaultConfigDir()); err == nil {
			defer debuglog.Close()
		}
	}

	p := tea.NewProgram(
		New(source, recents, initial),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
