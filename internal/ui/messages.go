package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/mama/internal/domain"
	"github.com/renato0307/mama/internal/services"
)

// refreshInterval is how often the screen re-reads the countdown
const refreshInterval = 250 * time.Millisecond

// refreshMsg asks the model to re-read the countdown snapshot
type refreshMsg struct{}

// focusEventMsg carries a milestone published by the focus service
type focusEventMsg services.FocusEvent

// statsLoadedMsg carries freshly computed daily statistics
type statsLoadedMsg struct {
	err   error
	stats domain.DailyStats
}

// clearErrorMsg is sent after the error clear delay to trigger error clearing
type clearErrorMsg struct{}

func refreshCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return refreshMsg{}
	})
}

// waitForFocusEvent blocks until the focus service publishes an event
func waitForFocusEvent(events <-chan services.FocusEvent) tea.Cmd {
	return func() tea.Msg {
		return focusEventMsg(<-events)
	}
}
