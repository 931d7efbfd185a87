package cmd

import (
	"charm.land/lipgloss/v2"
)

// Color palette shared by the table-style command output.
var (
	colPrimary = lipgloss.Color("#8B5CF6") // Purple
	colSuccess = lipgloss.Color("#22C55E") // Green
	colWarn    = lipgloss.Color("#F97316") // Orange
	colError   = lipgloss.Color("#F43F5E") // Rose
	colDim     = lipgloss.Color("#94A3B8") // Slate
)

var (
	styleHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(colPrimary)

	styleLabel = lipgloss.NewStyle().
			Foreground(colDim)

	styleStrong = lipgloss.NewStyle().
			Foreground(colSuccess).
			Bold(true)

	styleWeak = lipgloss.NewStyle().
			Foreground(colError)

	styleNote = lipgloss.NewStyle().
			Foreground(colWarn)
)

// masteryStyle picks a color band for a 0..1 mastery value.
func masteryStyle(v float64) lipgloss.Style {
	switch {
	case v >= 0.8:
		return styleStrong
	case v >= 0.5:
		return styleNote
	default:
		return styleWeak
	}
}
