package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/renato0307/mama/internal/domain"
)

// SessionsCmd manages recorded pomodoros
type SessionsCmd struct {
	Cancel   SessionsCancelCmd   `cmd:"cancel" help:"Cancel a running session"`
	Complete SessionsCompleteCmd `cmd:"complete" help:"Complete a running session"`
	List     SessionsListCmd     `cmd:"list" help:"List sessions, newest first" default:"1"`
	Recover  SessionsRecoverCmd  `cmd:"recover" help:"Cancel sessions left running by a crashed timer"`
	View     SessionsViewCmd     `cmd:"view" help:"View a specific session"`
}

// sessionJSON is the JSON shape of a session
type sessionJSON struct {
	Duration        int        `json:"duration"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	ID              string     `json:"id"`
	PlannedDuration int        `json:"planned_duration"`
	StartedAt       time.Time  `json:"started_at"`
	Status          string     `json:"status"`
	TaskID          *string    `json:"task_id,omitempty"`
}

func toSessionJSON(s domain.Session) sessionJSON {
	return sessionJSON{
		Duration:        s.Duration,
		EndedAt:         s.EndedAt,
		ID:              s.ID,
		PlannedDuration: s.PlannedDuration,
		StartedAt:       s.StartedAt,
		Status:          string(s.Status),
		TaskID:          s.TaskID,
	}
}

// printJSON writes v as indented JSON to stdout
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// formatLocal renders a stored UTC timestamp in local time
func formatLocal(t time.Time) string {
	return t.Local().Format(time.DateTime)
}
