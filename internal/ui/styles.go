package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor  = lipgloss.Color("#97CE4C") // portal green
	aliveColor   = lipgloss.Color("#10B981")
	deadColor    = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")
	warningColor = lipgloss.Color("#F59E0B")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1)

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Width(32)

	detailStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	aliveStyle   = lipgloss.NewStyle().Foreground(aliveColor).Width(12)
	deadStyle    = lipgloss.NewStyle().Foreground(deadColor).Width(12)
	unknownStyle = lipgloss.NewStyle().Foreground(mutedColor).Width(12)

	errorStyle = lipgloss.NewStyle().
			Foreground(deadColor).
			Bold(true)

	loadingStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)

func statusStyle(status string) lipgloss.Style {
	switch strings.ToLower(status) {
	case "alive":
		return aliveStyle
	case "dead":
		return deadStyle
	default:
		return unknownStyle
	}
}
