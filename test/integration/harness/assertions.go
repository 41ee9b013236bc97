package harness

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess fails the test unless mama exited with 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Zero(tb, result.ExitCode, "mama exited with %d\nstdout: %s\nstderr: %s",
		result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure fails the test if mama exited with 0.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotZero(tb, result.ExitCode, "mama unexpectedly succeeded\nstdout: %s", result.Stdout)
}

func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "stdout: %s", result.Stdout)
}

func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "stderr: %s", result.Stderr)
}

// AssertValidJSON decodes stdout into target.
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target), "stdout is not JSON: %s", result.Stdout)
}

// AssertSessionStatuses checks the ledger holds exactly the given statuses,
// newest first, as reported by `sessions list`.
func AssertSessionStatuses(tb testing.TB, env *TestEnvironment, expected ...string) {
	tb.Helper()
	sessions := ListSessions(tb, env)
	statuses := make([]string, len(sessions))
	for i, s := range sessions {
		statuses[i] = s.Status
	}
	if len(expected) == 0 {
		assert.Empty(tb, statuses)
		return
	}
	assert.Equal(tb, expected, statuses)
}
