package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_IsTerminal(t *testing.T) {
	tests := []struct {
		status   SessionStatus
		expected bool
	}{
		{StatusRunning, false},
		{StatusCompleted, true},
		{StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, Session{Status: tt.status}.IsTerminal())
		})
	}
}

func TestParseSessionStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected SessionStatus
		ok       bool
	}{
		{"RUNNING", StatusRunning, true},
		{"completed", StatusCompleted, true},
		{" Cancelled ", StatusCancelled, true},
		{"paused", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			status, ok := ParseSessionStatus(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestSession_Symbol(t *testing.T) {
	assert.Equal(t, SymbolRunning, Session{Status: StatusRunning}.Symbol())
	assert.Equal(t, SymbolCompleted, Session{Status: StatusCompleted}.Symbol())
	assert.Equal(t, SymbolCancelled, Session{Status: StatusCancelled}.Symbol())
}
