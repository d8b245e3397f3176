package cmd

import "github.com/charmbracelet/lipgloss"

var (
	roast   = lipgloss.Color("#6F4E37")
	crema   = lipgloss.Color("#D9B38C")
	success = lipgloss.Color("#8BC34A")
	warning = lipgloss.Color("#FFC107")
	danger  = lipgloss.Color("#E53935")
	muted   = lipgloss.Color("#8A8A8A")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(roast)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(crema).Underline(true)
	priceStyle   = lipgloss.NewStyle().Foreground(success)
	badgeStyle   = lipgloss.NewStyle().Foreground(warning).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	errorStyle   = lipgloss.NewStyle().Foreground(danger).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(success).Bold(true)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(crema).Padding(0, 1)
)
