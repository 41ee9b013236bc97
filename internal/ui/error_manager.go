package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const errorPrefix = "Error: "

// ErrorManager handles error display and auto-clearing
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
}

// NewErrorManager creates a new ErrorManager with the specified auto-clear delay
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{
		errorClearDelay: errorClearDelay,
	}
}

// SetError sets the current error and returns the command that clears it
func (em *ErrorManager) SetError(err error) tea.Cmd {
	em.currentError = err
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

// ClearError clears the current error
func (em *ErrorManager) ClearError() {
	em.currentError = nil
}

// GetError returns the current error
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// Render formats the current error on a single line no wider than maxWidth
func (em *ErrorManager) Render(maxWidth int) string {
	if em.currentError == nil {
		return ""
	}
	return formatErrorForDisplay(em.currentError, maxWidth)
}

// formatErrorForDisplay flattens an error message to one line and truncates
// it with "..." when it does not fit
func formatErrorForDisplay(err error, maxWidth int) string {
	message := strings.Join(strings.Fields(err.Error()), " ")
	if message == "" {
		message = "unknown error"
	}

	line := []rune(errorPrefix + message)
	if maxWidth < 20 {
		maxWidth = 20
	}
	if len(line) > maxWidth {
		line = append(line[:maxWidth-3], []rune("...")...)
	}
	return string(line)
}
