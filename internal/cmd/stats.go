package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/renato0307/mama/internal/ui"
)

// StatsCmd shows today's focus statistics
type StatsCmd struct {
	Format string `help:"Output format (table or json)" default:"table" enum:"table,json"`
}

// Run executes the stats command
func (s *StatsCmd) Run(container *Container) error {
	stats, err := container.StatsService.Today(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	if s.Format == "json" {
		return printJSON(map[string]int{
			"cancelled_sessions": stats.CancelledSessions,
			"completed_sessions": stats.CompletedSessions,
			"focused_seconds":    stats.FocusedSeconds,
			"streak_days":        stats.StreakDays,
		})
	}

	fmt.Printf("Focus - %s\n\n", time.Now().Format(time.DateOnly))
	fmt.Printf("Pomodoros:  %d\n", stats.CompletedSessions)
	fmt.Printf("Focused:    %s\n", ui.FormatMinutes(stats.FocusedSeconds))
	fmt.Printf("Cancelled:  %d\n", stats.CancelledSessions)
	fmt.Printf("Streak:     %d day(s)\n", stats.StreakDays)
	return nil
}
