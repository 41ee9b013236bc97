package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Countdown styles
var (
	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight).
			Padding(1, 2)

	StateLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	TaskTitleStyle = lipgloss.NewStyle().
			Foreground(ColorNormal).
			Italic(true)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)
)

// First-run hint styles
var (
	HintKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHintKey).
			Bold(true)

	HintLabelStyle = lipgloss.NewStyle().
			Foreground(ColorHintLabel)
)

// Error styles
var (
	ErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
)

// StateColor returns the color used for a countdown state name
func StateColor(state string) Color {
	switch state {
	case "running":
		return ColorRunning
	case "paused":
		return ColorPaused
	case "completed":
		return ColorCompleted
	default:
		return ColorIdle
	}
}

// StateStyle returns the label style for a countdown state name
func StateStyle(state string) lipgloss.Style {
	return StateLabelStyle.Foreground(StateColor(state))
}

// TagStyle returns a style rendering a tag in its own color
func TagStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true)
}
