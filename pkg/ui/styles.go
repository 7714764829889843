// Package ui renders the terminal summary of a report run.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette, matching the status colors of common security tooling
var (
	Primary = lipgloss.Color("#7D56F4") // Purple - brand color

	// Status colors
	Pass    = lipgloss.Color("#00D26A") // Green
	Fail    = lipgloss.Color("#FF3838") // Red
	Manual  = lipgloss.Color("#4D96FF") // Blue - needs a human
	Warning = lipgloss.Color("#FFB800") // Amber
	Muted   = lipgloss.Color("#6B7280") // Gray
)

// Pre-configured styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(Primary).
			Padding(0, 1)

	StatLabelStyle = lipgloss.NewStyle().
			Foreground(Muted)

	StatValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	PassStyle = lipgloss.NewStyle().
			Foreground(Pass).
			Bold(true)

	FailStyle = lipgloss.NewStyle().
			Foreground(Fail).
			Bold(true)

	ManualStyle = lipgloss.NewStyle().
			Foreground(Manual).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// StatusStyle returns the style for a report status string.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "PASS":
		return PassStyle
	case "FAIL":
		return FailStyle
	case "MANUAL":
		return ManualStyle
	default:
		return MutedStyle
	}
}
