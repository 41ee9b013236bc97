package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/mama/internal/logging"
)

// SessionsCancelCmd cancels a running session
type SessionsCancelCmd struct {
	Duration *int   `help:"Focused seconds to record (default: time since start, capped at the plan)"`
	ID       string `arg:"" help:"ID of the session to cancel"`
}

// Run executes the cancel command
func (s *SessionsCancelCmd) Run(container *Container) error {
	ctx := context.Background()

	var duration int
	if s.Duration != nil {
		duration = *s.Duration
	} else {
		session, err := container.LedgerService.GetSession(ctx, s.ID)
		if err != nil {
			return err
		}
		duration = min(int(container.LedgerService.Elapsed(*session).Seconds()), session.PlannedDuration)
		duration = max(duration, 0)
	}

	logging.Logger.Info("Executing sessions cancel command", "session_id", s.ID, "duration", duration)
	if err := container.LedgerService.CancelSession(ctx, s.ID, duration); err != nil {
		return err
	}

	container.StatsService.Invalidate()
	fmt.Printf("Session '%s' cancelled\n", s.ID)
	return nil
}

// SessionsCompleteCmd completes a running session
type SessionsCompleteCmd struct {
	Duration *int   `help:"Focused seconds to record (default: the planned duration)"`
	ID       string `arg:"" help:"ID of the session to complete"`
}

// Run executes the complete command
func (s *SessionsCompleteCmd) Run(container *Container) error {
	ctx := context.Background()

	session, err := container.LedgerService.GetSession(ctx, s.ID)
	if err != nil {
		return err
	}

	duration := session.PlannedDuration
	if s.Duration != nil {
		duration = *s.Duration
	}

	logging.Logger.Info("Executing sessions complete command", "session_id", s.ID, "duration", duration)
	if err := container.LedgerService.CompleteSession(ctx, s.ID, duration); err != nil {
		return err
	}

	if session.TaskID != nil {
		if err := container.TaskService.IncrementPomodoro(ctx, *session.TaskID); err != nil {
			logging.Logger.Warn("Failed to credit task", "task_id", *session.TaskID, "error", err)
		}
	}

	container.StatsService.Invalidate()
	fmt.Printf("Session '%s' completed\n", s.ID)
	return nil
}

// SessionsRecoverCmd cancels sessions left RUNNING
type SessionsRecoverCmd struct{}

// Run executes the recover command
func (s *SessionsRecoverCmd) Run(container *Container) error {
	// A live timer owns its RUNNING session
	fileLock, err := acquireLock()
	if err != nil {
		return err
	}
	defer fileLock.Release()

	n, err := container.LedgerService.RecoverOrphans(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Recovered %d orphaned session(s)\n", n)
	return nil
}
