package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/mama/internal/domain"
	"github.com/renato0307/mama/internal/ui"
)

// SessionsViewCmd views a specific session
type SessionsViewCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ID     string `arg:"" help:"ID of the session to view"`
}

// Run executes the view command
func (s *SessionsViewCmd) Run(container *Container) error {
	session, err := container.LedgerService.GetSession(context.Background(), s.ID)
	if err != nil {
		return err
	}

	if s.Format == "json" {
		return printJSON(toSessionJSON(*session))
	}
	s.printTable(container, session)
	return nil
}

func (s *SessionsViewCmd) printTable(container *Container, session *domain.Session) {
	fmt.Printf("Session: %s\n", session.ID)
	fmt.Printf("Status: %s %s\n", session.Symbol(), session.Status)
	fmt.Printf("Started: %s\n", formatLocal(session.StartedAt))
	if session.EndedAt != nil {
		fmt.Printf("Ended: %s\n", formatLocal(*session.EndedAt))
	} else {
		fmt.Printf("Running for: %s\n", ui.FormatClock(int(container.LedgerService.Elapsed(*session).Seconds())))
	}
	fmt.Printf("Planned: %s\n", ui.FormatClock(session.PlannedDuration))
	fmt.Printf("Focused: %s\n", ui.FormatClock(session.Duration))
	if session.TaskID != nil {
		fmt.Printf("Task: %s\n", *session.TaskID)
	} else {
		fmt.Printf("Task: <none>\n")
	}
}
