// Package upsert implements find-or-insert edits of a single key inside
// otherwise unparsed configuration text.
//
// Two rules exist:
//
//   - FlatKey: a top level `key = "value"` assignment. An existing
//     assignment is replaced in place; otherwise the line goes after the
//     last anchor assignment (separated from a following non-blank line by
//     one blank line), or before the first non-comment, non-blank line.
//   - SectionKey: a `key = "value"` assignment inside a `[section]` block.
//     A missing section is prepended to the buffer. Within an existing
//     section the assignment is replaced in place or inserted right after
//     the header, and the section is closed with exactly two blank lines.
//
// Both rules rewrite the key whether or not it already holds the desired
// value, and both are idempotent.
package upsert
