package integration_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/mama/test/integration/harness"
)

// completedSession records one finished pomodoro and returns its id
func completedSession(t *testing.T, env *harness.TestEnvironment) string {
	t.Helper()

	result := harness.RunCommandWithTimeout(t, env, 20*time.Second, "focus", "--duration", "1s")
	harness.AssertSuccess(t, result)

	sessions := harness.ListSessions(t, env)
	require.NotEmpty(t, sessions)
	return sessions[0].ID
}

func TestSessionsListEmpty(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "sessions", "list")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No sessions yet.")
}

func TestSessionsListInvalidStatus(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "sessions", "list", "--status", "paused")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "invalid status")
}

func TestSessionsView(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	id := completedSession(t, env)

	result := harness.RunCommand(t, env, "sessions", "view", id)

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Session: "+id)
	harness.AssertStdoutContains(t, result, "Status: ● COMPLETED")
	harness.AssertStdoutContains(t, result, "Task: <none>")

	var session harness.SessionRecord
	result = harness.RunCommand(t, env, "sessions", "view", id, "--format", "json")
	harness.AssertValidJSON(t, result, &session)
	assert.Equal(t, id, session.ID)
	assert.Equal(t, 1, session.Duration)
}

func TestSessionsViewUnknownFails(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "sessions", "view", "does-not-exist")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "session not found")
}

func TestSessionsEndedSessionCannotChange(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	id := completedSession(t, env)

	for _, verb := range []string{"cancel", "complete"} {
		t.Run(verb, func(t *testing.T) {
			result := harness.RunCommand(t, env, "sessions", verb, id)

			harness.AssertFailure(t, result)
			harness.AssertStderrContains(t, result, "session already ended")
		})
	}

	sessions := harness.ListSessions(t, env, "--status", "completed")
	require.Len(t, sessions, 1)
	assert.Equal(t, 1, sessions[0].Duration)
}

func TestSessionsRecoverWithNothingRunning(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	completedSession(t, env)

	result := harness.RunCommand(t, env, "sessions", "recover")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Recovered 0 orphaned session(s)")
	harness.AssertSessionStatuses(t, env, "COMPLETED")
	assert.Len(t, harness.ListSessions(t, env, "--status", "completed", "--today"), 1)
}
