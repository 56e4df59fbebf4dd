// Package output renders a bootstrap run as one status line per template.
//
// Plain text is used when the destination is not a color capable terminal
// or NO_COLOR is set; otherwise the same lines are styled with lipgloss.
package output
