package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary Color = "203" // Tomato - app name, titles
)

// Countdown state colors
const (
	ColorCompleted Color = "99" // Purple - completed
	ColorIdle      Color = "8"  // Gray - idle
	ColorPaused    Color = "3"  // Yellow - paused
	ColorRunning   Color = "2"  // Green - running
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
)

// Accent colors
const (
	ColorHintKey   Color = "226" // Yellow - first run hint keys
	ColorHintLabel Color = "178" // Gold - first run hint labels
)

// DefaultProgressColors is the default gradient of the progress bar
var DefaultProgressColors = []string{"#FF6347", "#FFD700"}
