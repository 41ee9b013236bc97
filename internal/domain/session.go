package domain

import (
	"strings"
	"time"
)

// SessionStatus represents the lifecycle status of a focus session
type SessionStatus string

const (
	StatusCancelled SessionStatus = "CANCELLED"
	StatusCompleted SessionStatus = "COMPLETED"
	StatusRunning   SessionStatus = "RUNNING"
)

// Status symbols (Unicode)
const (
	SymbolCancelled = "✗"
	SymbolCompleted = "●"
	SymbolRunning   = "◐"
)

// Session is one focus interval recorded in the ledger
type Session struct {
	Duration        int
	EndedAt         *time.Time
	ID              string
	PlannedDuration int
	StartedAt       time.Time
	Status          SessionStatus
	TaskID          *string
}

// IsTerminal reports whether the session can no longer change status
func (s Session) IsTerminal() bool {
	return s.Status == StatusCompleted || s.Status == StatusCancelled
}

// Symbol returns the status icon used by list views
func (s Session) Symbol() string {
	switch s.Status {
	case StatusCompleted:
		return SymbolCompleted
	case StatusCancelled:
		return SymbolCancelled
	default:
		return SymbolRunning
	}
}

// ParseSessionStatus converts user input into a SessionStatus.
// Matching is case-insensitive; unknown values return false.
func ParseSessionStatus(s string) (SessionStatus, bool) {
	switch SessionStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusRunning:
		return StatusRunning, true
	case StatusCompleted:
		return StatusCompleted, true
	case StatusCancelled:
		return StatusCancelled, true
	}
	return "", false
}

// SessionFilter narrows ledger listings
type SessionFilter struct {
	Limit  int
	Since  *time.Time
	Status *SessionStatus
	TaskID *string
}
