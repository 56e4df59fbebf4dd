// Package paths provides path handling for pyboot.
//
// It covers three concerns:
//
//   - Tool directories: config and state locations following the XDG Base
//     Directory specification, with PYBOOT_* environment overrides.
//   - Expansion: "~" and environment variable references in user supplied
//     paths such as global default template locations. Both $VAR / ${VAR}
//     and %VAR% references are expanded; unset variables are left verbatim.
//   - Sanitizing: mapping a template's declared output directory to a path
//     that is guaranteed to stay inside the project root.
//
// # Output path sanitizing
//
// Sanitize evaluates, in order:
//
//  1. A "~" anywhere in the candidate collapses it to the project root.
//  2. Any ".." segment collapses it to the project root.
//  3. An absolute path loses its root (and volume) and is used relative to
//     the project root; nothing left means the project root.
//  4. Anything else is used as given, cleaned.
//
// Unsafe candidates are redirected, not rejected. Sanitize reports whether a
// redirection happened so callers can opt into a strict mode.
package paths
