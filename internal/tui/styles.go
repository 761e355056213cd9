package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the color scheme of the side panel.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Graph   lipgloss.Color
	Warning lipgloss.Color
}

var themes = []Theme{
	{
		Name:    "plasma",
		Primary: lipgloss.Color("#f0f921"),
		Text:    lipgloss.Color("252"),
		Muted:   lipgloss.Color("242"),
		Graph:   lipgloss.Color("#cc4778"),
		Warning: lipgloss.Color("#ff4444"),
	},
	{
		Name:    "mono",
		Primary: lipgloss.Color("255"),
		Text:    lipgloss.Color("250"),
		Muted:   lipgloss.Color("240"),
		Graph:   lipgloss.Color("250"),
		Warning: lipgloss.Color("255"),
	},
	{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Text:    lipgloss.Color("#00cc00"),
		Muted:   lipgloss.Color("#006600"),
		Graph:   lipgloss.Color("#88ff88"),
		Warning: lipgloss.Color("#ffff00"),
	},
}

type styles struct {
	canvas, panel, header, label, value, graph, help, warn lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		canvas: lipgloss.NewStyle().Padding(1, 2),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(1, 2).
			Width(48),
		header: lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:  lipgloss.NewStyle().Foreground(t.Text),
		graph:  lipgloss.NewStyle().Foreground(t.Graph).Padding(1, 0),
		help:   lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		warn:   lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
	}
}
