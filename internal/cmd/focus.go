package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/renato0307/mama/internal/logging"
	"github.com/renato0307/mama/internal/services"
	"github.com/renato0307/mama/internal/ui"
)

// FocusCmd runs one pomodoro and prints its progress
type FocusCmd struct {
	Duration time.Duration `help:"Countdown length (e.g. 25m); defaults to the work_duration preference"`
	Task     string        `help:"Task ID to credit when the pomodoro completes" short:"t"`
}

// Run executes the focus command
func (f *FocusCmd) Run(container *Container) error {
	if f.Duration < 0 || (f.Duration > 0 && f.Duration < time.Second) {
		return fmt.Errorf("duration must be at least 1s")
	}

	fileLock, err := acquireLock()
	if err != nil {
		return err
	}
	defer fileLock.Release()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container.RecoverOrphans(ctx)

	var taskID *string
	if f.Task != "" {
		task, err := container.TaskService.Get(ctx, f.Task)
		if err != nil {
			return err
		}
		taskID = &task.ID
		fmt.Printf("Focusing on: %s\n", task.Title)
	}

	focus := container.NewFocusService()
	id, err := focus.Start(ctx, services.StartFocusParams{
		DurationSeconds: int(f.Duration / time.Second),
		TaskID:          taskID,
	})
	if err != nil {
		return fmt.Errorf("failed to start pomodoro: %w", err)
	}
	logging.Logger.Info("Headless focus started", "session_id", id)

	return f.wait(ctx, focus)
}

// wait prints the remaining time until the pomodoro ends or ctx is cancelled
func (f *FocusCmd) wait(ctx context.Context, focus *services.FocusService) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	f.printProgress(focus.Snapshot())

	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			// The signal context is already cancelled
			if err := focus.Close(context.Background()); err != nil {
				return fmt.Errorf("failed to abandon pomodoro: %w", err)
			}
			fmt.Println("Pomodoro abandoned")
			return nil

		case event := <-focus.Events():
			switch event.Type {
			case services.FocusEventHalfway:
				fmt.Println()
				fmt.Println("Halfway there")
			case services.FocusEventCompleted:
				f.printProgress(focus.Snapshot())
				fmt.Println()
				fmt.Println("Pomodoro completed")
				return nil
			case services.FocusEventCompletionFailed:
				fmt.Println()
				return f.retry(focus, event.Err)
			}

		case <-ticker.C:
			focus.Refresh()
			f.printProgress(focus.Snapshot())
		}
	}
}

// retry gives the ledger a few more chances to accept the completion
func (f *FocusCmd) retry(focus *services.FocusService, cause error) error {
	const attempts = 3

	for i := range attempts {
		time.Sleep(time.Duration(i+1) * time.Second)
		err := focus.RetryPending(context.Background())
		if err == nil {
			fmt.Println("Pomodoro completed")
			return nil
		}
		logging.Logger.Warn("Retrying completion failed", "attempt", i+1, "error", err)
		cause = errors.Join(cause, err)
	}
	return fmt.Errorf("pomodoro finished but was not saved: %w", cause)
}

func (f *FocusCmd) printProgress(snap services.FocusSnapshot) {
	fmt.Printf("\r%s %-9s %3.0f%%", ui.FormatClock(snap.RemainingSeconds), snap.State, snap.Progress*100)
}
