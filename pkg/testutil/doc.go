// Package testutil provides utilities for testing pyboot components.
//
// Key components:
//   - TestEnvironment: a project directory and home directory on either an
//     in-memory or a temporary real filesystem
//   - ErrorFS: a types.FS wrapper that fails chosen paths
//   - CaptureLogs: routes the global logger into a buffer for assertions
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated when code under test touches
//     the real filesystem directly (configuration files, os.Getwd)
//   - All test data should be defined inline, not in external files
package testutil
