package integration_test

import (
	"testing"

	"github.com/renato0307/mama/test/integration/harness"
)

func TestPlaySound(t *testing.T) {
	// Sounds are disabled in the test settings, so every known cue succeeds
	tests := []struct {
		name         string
		args         []string
		wantExitCode int
	}{
		{name: "default cue", args: []string{"play-sound"}, wantExitCode: 0},
		{name: "named cue", args: []string{"play-sound", "magic"}, wantExitCode: 0},
		{name: "unknown cue", args: []string{"play-sound", "trumpet"}, wantExitCode: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
				harness.AssertStderrContains(t, result, "unknown sound cue")
			}
		})
	}
}

func TestOnboardNonInteractive(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "onboard", "--work-duration", "50", "--mom-mode", "strict")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "All set: 50m pomodoros in strict mode")

	var prefs map[string]string
	harness.AssertValidJSON(t, harness.RunCommand(t, env, "settings", "show", "--format", "json"), &prefs)
	if prefs["work_duration"] != "3000" || prefs["mom_mode"] != "strict" {
		t.Errorf("unexpected preferences after onboarding: %v", prefs)
	}
}
