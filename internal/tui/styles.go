package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Color palette — Catppuccin Macchiato.
var (
	colorFocus     = lipgloss.Color(catppuccin.Macchiato.Text().Hex)
	colorBreak     = lipgloss.Color(catppuccin.Macchiato.Green().Hex)
	colorLongBreak = lipgloss.Color(catppuccin.Macchiato.Teal().Hex)
	colorMuted     = lipgloss.Color(catppuccin.Macchiato.Overlay0().Hex)
	colorSubtle    = lipgloss.Color(catppuccin.Macchiato.Surface1().Hex)
	colorAccent    = lipgloss.Color(catppuccin.Macchiato.Lavender().Hex)
	colorError     = lipgloss.Color(catppuccin.Macchiato.Red().Hex)
	colorFg        = lipgloss.Color(catppuccin.Macchiato.Text().Hex)
)

// chartColors cycle through the ledger bar chart, one per project.
var chartColors = []lipgloss.Color{
	lipgloss.Color(catppuccin.Macchiato.Blue().Hex),
	lipgloss.Color(catppuccin.Macchiato.Green().Hex),
	lipgloss.Color(catppuccin.Macchiato.Peach().Hex),
	lipgloss.Color(catppuccin.Macchiato.Mauve().Hex),
	lipgloss.Color(catppuccin.Macchiato.Teal().Hex),
	lipgloss.Color(catppuccin.Macchiato.Yellow().Hex),
	lipgloss.Color(catppuccin.Macchiato.Red().Hex),
	lipgloss.Color(catppuccin.Macchiato.Sapphire().Hex),
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorAccent).
				Padding(1, 2)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)
)

// phaseStyle maps a phase accent: focus text, break green, long break teal.
func phaseStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}
