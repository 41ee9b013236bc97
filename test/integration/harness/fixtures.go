package harness

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// TaskRecord mirrors one entry of `tasks list --format json`.
type TaskRecord struct {
	CompletedPomodoros int      `json:"completed_pomodoros"`
	EstimatedPomodoros int      `json:"estimated_pomodoros"`
	ID                 string   `json:"id"`
	Status             string   `json:"status"`
	Tags               []string `json:"tags"`
	Title              string   `json:"title"`
}

// SessionRecord mirrors one entry of `sessions list --format json`.
type SessionRecord struct {
	Duration        int     `json:"duration"`
	ID              string  `json:"id"`
	PlannedDuration int     `json:"planned_duration"`
	Status          string  `json:"status"`
	TaskID          *string `json:"task_id"`
}

// AddTask creates a task through the CLI and returns its record.
func AddTask(tb testing.TB, env *TestEnvironment, title string, args ...string) TaskRecord {
	tb.Helper()

	result := RunCommand(tb, env, append([]string{"tasks", "add", title}, args...)...)
	AssertSuccess(tb, result)

	for _, task := range ListTasks(tb, env, true) {
		if task.Title == title {
			return task
		}
	}
	tb.Fatalf("Task %q not found after adding it", title)
	return TaskRecord{}
}

// ListTasks returns the tasks reported by the CLI.
func ListTasks(tb testing.TB, env *TestEnvironment, all bool) []TaskRecord {
	tb.Helper()

	args := []string{"tasks", "list", "--format", "json"}
	if all {
		args = append(args, "--all")
	}
	result := RunCommand(tb, env, args...)
	AssertSuccess(tb, result)

	var tasks []TaskRecord
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), &tasks), "Stdout: %s", result.Stdout)
	return tasks
}

// ListSessions returns the sessions reported by the CLI.
func ListSessions(tb testing.TB, env *TestEnvironment, args ...string) []SessionRecord {
	tb.Helper()

	result := RunCommand(tb, env, append([]string{"sessions", "list", "--format", "json"}, args...)...)
	AssertSuccess(tb, result)

	var sessions []SessionRecord
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), &sessions), "Stdout: %s", result.Stdout)
	return sessions
}
