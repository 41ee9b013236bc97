package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/mama/internal/domain"
	"github.com/renato0307/mama/internal/logging"
	"github.com/renato0307/mama/internal/ports"
)

// SessionLedger records the lifecycle of focus sessions.
//
// Every session starts RUNNING and moves exactly once to COMPLETED or
// CANCELLED. A second terminal call for the same id fails with
// domain.ErrSessionEnded and leaves the stored record untouched.
type SessionLedger struct {
	clock  ports.Clock
	newID  func() string
	reader ports.SessionReader
	writer ports.SessionWriter
}

// NewSessionLedger creates a new SessionLedger
func NewSessionLedger(
	reader ports.SessionReader,
	writer ports.SessionWriter,
	clock ports.Clock,
) *SessionLedger {
	return &SessionLedger{
		clock:  clock,
		newID:  uuid.NewString,
		reader: reader,
		writer: writer,
	}
}

// CreateSession records a new RUNNING session and returns its id once the
// write has succeeded. taskID may be nil.
func (l *SessionLedger) CreateSession(ctx context.Context, taskID *string, plannedDuration int) (string, error) {
	if plannedDuration <= 0 {
		return "", fmt.Errorf("failed to create session: planned %w", domain.ErrInvalidDuration)
	}

	session := domain.Session{
		ID:              l.newID(),
		PlannedDuration: plannedDuration,
		StartedAt:       l.clock.Now().UTC(),
		Status:          domain.StatusRunning,
		TaskID:          taskID,
	}

	logging.Logger.Info("Creating session",
		"session_id", session.ID,
		"task_id", derefOr(taskID, ""),
		"planned_duration", plannedDuration)

	if err := l.writer.Create(ctx, session); err != nil {
		logging.Logger.Error("Failed to create session", "session_id", session.ID, "error", err)
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return session.ID, nil
}

// CompleteSession marks a RUNNING session COMPLETED with its actual duration
func (l *SessionLedger) CompleteSession(ctx context.Context, id string, actualDuration int) error {
	return l.finish(ctx, id, domain.StatusCompleted, actualDuration)
}

// CancelSession marks a RUNNING session CANCELLED with the time focused so far
func (l *SessionLedger) CancelSession(ctx context.Context, id string, actualDuration int) error {
	return l.finish(ctx, id, domain.StatusCancelled, actualDuration)
}

func (l *SessionLedger) finish(ctx context.Context, id string, status domain.SessionStatus, actualDuration int) error {
	if actualDuration < 0 {
		return fmt.Errorf("failed to end session %s: actual %w", id, domain.ErrInvalidDuration)
	}

	logging.Logger.Info("Ending session", "session_id", id, "status", status, "duration", actualDuration)

	if err := l.writer.Finish(ctx, id, status, actualDuration, l.clock.Now().UTC()); err != nil {
		logging.Logger.Error("Failed to end session", "session_id", id, "status", status, "error", err)
		return fmt.Errorf("failed to end session %s: %w", id, err)
	}

	return nil
}

// GetSession returns one session
func (l *SessionLedger) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	session, err := l.reader.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session %s: %w", id, err)
	}
	return session, nil
}

// ListSessions returns sessions matching filter, newest first
func (l *SessionLedger) ListSessions(ctx context.Context, filter domain.SessionFilter) ([]domain.Session, error) {
	sessions, err := l.reader.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// RecoverOrphans cancels sessions left RUNNING by a process that exited
// without ending them. Their duration stays 0 because the focused time is
// unknown. Returns the number of sessions cancelled.
func (l *SessionLedger) RecoverOrphans(ctx context.Context) (int64, error) {
	n, err := l.writer.CancelRunning(ctx, l.clock.Now().UTC())
	if err != nil {
		logging.Logger.Error("Failed to recover orphaned sessions", "error", err)
		return 0, fmt.Errorf("failed to recover orphaned sessions: %w", err)
	}

	if n > 0 {
		logging.Logger.Warn("Cancelled orphaned sessions", "count", n)
	}
	return n, nil
}

// Elapsed returns how long ago a session started according to the ledger clock
func (l *SessionLedger) Elapsed(session domain.Session) time.Duration {
	return l.clock.Now().Sub(session.StartedAt)
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
