package tui

import "github.com/charmbracelet/lipgloss"

type theme struct {
	Header lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
	Alert  lipgloss.Style
	Status lipgloss.Style
	Keys   lipgloss.Style
}

func defaultTheme() theme {
	accent := lipgloss.Color("#00FFFF")
	secondary := lipgloss.Color("#7D7D7D")
	alert := lipgloss.Color("#FFBF00")

	return theme{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		Muted: lipgloss.NewStyle().
			Foreground(secondary),
		Accent: lipgloss.NewStyle().
			Foreground(accent),
		Alert: lipgloss.NewStyle().
			Foreground(alert),
		Status: lipgloss.NewStyle().
			Foreground(secondary).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(secondary),
		Keys: lipgloss.NewStyle().
			Foreground(accent),
	}
}
