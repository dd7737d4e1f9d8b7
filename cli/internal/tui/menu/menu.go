// ABOUTME: Start menu for the interactive configurator
// ABOUTME: Lets the user begin a fresh request or reopen a recent one in the wizard

package menu

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/tui/styles"
)

// freshRequest is the option value for starting from defaults
const freshRequest = -1

type option struct {
	label string
	value int
}

// Menu represents the start menu
type Menu struct {
	options  []option
	recents  []models.BuildSetRequest
	selected int
}

// New creates a start menu listing recent requests after the fresh option
func New(recents []models.BuildSetRequest) *Menu {
	m := &Menu{
		options:  []option{{label: "Start a new build request", value: freshRequest}},
		recents:  recents,
		selected: freshRequest,
	}
	for i, req := range recents {
		m.options = append(m.options, option{label: "Reopen " + Describe(req), value: i})
	}
	if len(recents) > 0 {
		m.selected = 0
	}
	return m
}

// Run displays the menu and returns the request to prefill the wizard with.
// A nil request means start from defaults.
func (m *Menu) Run() (*models.BuildSetRequest, error) {
	if len(m.recents) == 0 {
		return nil, nil
	}

	var options []huh.Option[int]
	for _, opt := range m.options {
		options = append(options, huh.NewOption(opt.label, opt.value))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("What would you like to do?").
				Options(options...).
				Value(&m.selected),
		),
	).WithTheme(styles.FormTheme())

	if err := form.Run(); err != nil {
		return nil, err
	}
	return m.Selected(), nil
}

// Selected returns the request for the current selection
func (m *Menu) Selected() *models.BuildSetRequest {
	if m.selected < 0 || m.selected >= len(m.recents) {
		return nil
	}
	req := m.recents[m.selected]
	return &req
}

// Describe renders a request as "$1000 gaming 1440p"
func Describe(req models.BuildSetRequest) string {
	return fmt.Sprintf("$%s %s %s", req.Budget.String(), req.UseCase, req.Resolution)
}
