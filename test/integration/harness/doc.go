// Package harness provides utilities for integration testing the mama CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - MAMA_HOME: Isolated per test (temp directory)
//   - MAMA_DEBUG: Disabled to reduce noise
//
// Every environment starts with sounds disabled in settings.json.
package harness
