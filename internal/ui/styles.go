package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/quickdaily/internal/config"
)

type palette struct {
	title   lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	box     lipgloss.Style
	focused lipgloss.Style
}

func newPalette(fg, accent, muted, success, failure string) palette {
	return palette{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(fg)),
		label: lipgloss.NewStyle().
			Width(8).
			Foreground(lipgloss.Color(accent)),
		muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(muted)),
		success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(success)),
		failure: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(failure)),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(muted)).
			Padding(0, 1),
		focused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(accent)).
			Padding(0, 1),
	}
}

var (
	lightPalette = newPalette("#1F2937", "#2563EB", "#6B7280", "#15803D", "#DC2626")
	darkPalette  = newPalette("#F9FAFB", "#60A5FA", "#9CA3AF", "#4ADE80", "#F87171")
)

func paletteFor(theme config.Theme) palette {
	if theme == config.ThemeDark {
		return darkPalette
	}
	return lightPalette
}
