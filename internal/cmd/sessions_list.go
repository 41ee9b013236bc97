package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/renato0307/mama/internal/domain"
	"github.com/renato0307/mama/internal/ui"
)

// SessionsListCmd lists sessions
type SessionsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Maximum number of sessions to show (0 = all)" default:"20"`
	Status string `help:"Only show sessions with this status (running, completed, cancelled)"`
	Task   string `help:"Only show sessions attributed to this task ID"`
	Today  bool   `help:"Only show sessions started today"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(container *Container) error {
	filter, err := s.filter(time.Now())
	if err != nil {
		return err
	}

	sessions, err := container.LedgerService.ListSessions(context.Background(), filter)
	if err != nil {
		return err
	}

	if s.Format == "json" {
		out := make([]sessionJSON, len(sessions))
		for i, session := range sessions {
			out[i] = toSessionJSON(session)
		}
		return printJSON(out)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tSTARTED\tFOCUSED\tPLANNED\tTASK")
	for _, session := range sessions {
		task := "-"
		if session.TaskID != nil {
			task = *session.TaskID
		}
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\t%s\n",
			session.ID,
			session.Symbol(),
			session.Status,
			formatLocal(session.StartedAt),
			ui.FormatClock(session.Duration),
			ui.FormatClock(session.PlannedDuration),
			task)
	}
	return w.Flush()
}

func (s *SessionsListCmd) filter(now time.Time) (domain.SessionFilter, error) {
	filter := domain.SessionFilter{Limit: s.Limit}

	if s.Status != "" {
		status, ok := domain.ParseSessionStatus(s.Status)
		if !ok {
			return filter, fmt.Errorf("invalid status '%s' (valid: running, completed, cancelled)", s.Status)
		}
		filter.Status = &status
	}
	if s.Task != "" {
		filter.TaskID = &s.Task
	}
	if s.Today {
		since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).UTC()
		filter.Since = &since
	}

	return filter, nil
}
