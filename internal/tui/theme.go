package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// NewHuhTheme returns the huh theme matching the styles in this package.
func NewHuhTheme() *huh.Theme {
	t := huh.ThemeCharm()

	purple := lipgloss.Color("#7D56F4")
	green := lipgloss.Color("#04B575")

	t.Focused.Title = t.Focused.Title.Foreground(purple).Bold(true)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(purple)
	t.Blurred.Title = t.Blurred.Title.Foreground(lipgloss.Color("#888888"))

	return t
}
