package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// FormTheme is the huh theme for the wizard and start menu.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()
	plain := lipgloss.NewStyle()

	t.Group.Title = plain.Foreground(Primary).Bold(true).MarginBottom(1)
	t.Group.Description = plain.Foreground(Subtle).MarginBottom(1)

	f := &t.Focused
	f.Base = plain.PaddingLeft(1).BorderStyle(lipgloss.ThickBorder()).BorderLeft(true).BorderForeground(Primary)
	f.Title = plain.Foreground(Accent).Bold(true)
	f.Description = plain.Foreground(Subtle)
	f.ErrorIndicator = plain.Foreground(Danger).SetString(" *")
	f.ErrorMessage = plain.Foreground(Danger)
	f.SelectSelector = plain.Foreground(Primary).SetString("> ")
	f.Option = plain.Foreground(Text)
	f.SelectedOption = plain.Foreground(Secondary).Bold(true)
	f.TextInput.Cursor = plain.Foreground(Primary)
	f.TextInput.Prompt = plain.Foreground(Primary)
	f.TextInput.Placeholder = plain.Foreground(Muted)
	f.TextInput.Text = plain.Foreground(Text)
	f.FocusedButton = plain.Foreground(Text).Background(Primary).Padding(0, 2).MarginRight(1)
	f.BlurredButton = plain.Foreground(Subtle).Background(Surface).Padding(0, 2).MarginRight(1)

	t.Blurred = t.Focused
	b := &t.Blurred
	b.Base = plain.PaddingLeft(1).BorderStyle(lipgloss.HiddenBorder()).BorderLeft(true)
	b.Title = plain.Foreground(Subtle)
	b.SelectSelector = plain.Foreground(Subtle).SetString("  ")
	b.Option = plain.Foreground(Subtle)

	return t
}
