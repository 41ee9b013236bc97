package integration_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/mama/test/integration/harness"
)

func TestStatsEmpty(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "stats")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Pomodoros:  0")
	harness.AssertStdoutContains(t, result, "Streak:     0 day(s)")
}

func TestStatsCountsTodaysPomodoros(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	harness.AssertSuccess(t, harness.RunCommandWithTimeout(t, env, 20*time.Second, "focus", "--duration", "1s"))

	var stats map[string]int
	harness.AssertValidJSON(t, harness.RunCommand(t, env, "stats", "--format", "json"), &stats)

	assert.Equal(t, 1, stats["completed_sessions"])
	assert.Equal(t, 1, stats["focused_seconds"])
	assert.Equal(t, 0, stats["cancelled_sessions"])
	assert.Equal(t, 1, stats["streak_days"])
}

func TestStatsInvalidFormat(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "stats", "--format=chart")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "format")
}
