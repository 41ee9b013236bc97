package harness

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own MAMA_HOME.
type TestEnvironment struct {
	MamaHome string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp MAMA_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	env := &TestEnvironment{
		MamaHome: tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
	env.WriteSettings(map[string]any{"sound_enabled": false})
	return env
}

// Environ returns environment variables configured for test isolation.
// It filters out MAMA_* variables and sets:
//   - MAMA_HOME to the temp directory
//   - MAMA_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	// Filter out existing MAMA_* variables and any we're overriding
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if _, overridden := e.extraEnv[key]; strings.HasPrefix(key, "MAMA_") || overridden {
			continue
		}
		env = append(env, kv)
	}

	// Add isolated environment variables
	env = append(env,
		"MAMA_HOME="+e.MamaHome,
		"MAMA_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.MamaHome, "mama.db")
}

// SettingsPath returns the path to the test settings.json.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.MamaHome, "settings.json")
}

// WriteSettings replaces settings.json with the given values.
func (e *TestEnvironment) WriteSettings(settings map[string]any) {
	e.tb.Helper()

	data, err := json.Marshal(settings)
	if err != nil {
		e.tb.Fatalf("Failed to marshal settings: %v", err)
	}
	if err := os.WriteFile(e.SettingsPath(), data, 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// TempDir returns a scratch directory inside this test environment.
func (e *TestEnvironment) TempDir() string {
	dir := filepath.Join(e.MamaHome, "scratch")
	if err := os.MkdirAll(dir, 0755); err != nil {
		e.tb.Fatalf("Failed to create scratch directory: %v", err)
	}
	return dir
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
