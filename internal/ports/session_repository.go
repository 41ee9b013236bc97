package ports

import (
	"context"
	"time"

	"github.com/renato0307/mama/internal/domain"
)

// SessionReader reads focus sessions
type SessionReader interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context, filter domain.SessionFilter) ([]domain.Session, error)
}

// SessionWriter records session lifecycle transitions
type SessionWriter interface {
	// Create persists a new RUNNING session
	Create(ctx context.Context, session domain.Session) error
	// Finish moves a RUNNING session to a terminal status. It returns
	// domain.ErrSessionNotFound for unknown ids and domain.ErrSessionEnded
	// when the session is no longer running.
	Finish(ctx context.Context, id string, status domain.SessionStatus, duration int, endedAt time.Time) error
	// CancelRunning cancels every RUNNING session and returns how many changed
	CancelRunning(ctx context.Context, endedAt time.Time) (int64, error)
}

// SessionStatsReader aggregates sessions for statistics
type SessionStatsReader interface {
	CountSessions(ctx context.Context, status domain.SessionStatus, since time.Time) (int, error)
	SumDuration(ctx context.Context, status domain.SessionStatus, since time.Time) (int, error)
	CompletedStartTimes(ctx context.Context, since time.Time) ([]time.Time, error)
}

// SessionRepository is the composite interface
type SessionRepository interface {
	SessionReader
	SessionWriter
	SessionStatsReader
	Close() error
}
