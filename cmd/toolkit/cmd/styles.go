package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorMuted   = lipgloss.Color("#6B7280")
	colorAccent  = lipgloss.Color("#F59E0B")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	ruleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// column renders s left-aligned in a cell of the given width
func column(style lipgloss.Style, width int, s string) string {
	return style.Width(width).Render(s)
}
