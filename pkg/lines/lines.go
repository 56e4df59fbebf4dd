// Package lines provides the line buffer every template stage exchanges:
// an ordered list of lines, each ending in exactly one "\n" terminator.
//
// A Buffer is never empty. Empty input normalizes to a single blank line,
// and normalizing an already normalized buffer returns an equal buffer.
package lines

import "strings"

// Terminator ends every line in a normalized Buffer
const Terminator = "\n"

// Buffer is an ordered sequence of terminated lines.
type Buffer []string

// FromText splits a block of text on line boundaries, keeping terminators,
// and normalizes the result. A "\r\n" ending is kept as part of the line.
func FromText(text string) Buffer {
	return Normalize(SplitKeepEnds(text))
}

// FromFragments normalizes a sequence of line fragments, terminating every
// fragment that lacks a terminator.
func FromFragments(fragments []string) Buffer {
	return Normalize(fragments)
}

// SplitKeepEnds splits text after every "\n". A trailing fragment without a
// terminator is kept as its own element; empty text yields no elements.
func SplitKeepEnds(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.SplitAfter(text, Terminator)
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// Normalize returns a new buffer where every line ends with a terminator.
// The input slice is never modified.
func Normalize(in []string) Buffer {
	if len(in) == 0 {
		return Buffer{Terminator}
	}

	out := make(Buffer, 0, len(in))
	for _, line := range in {
		if !strings.HasSuffix(line, Terminator) {
			line += Terminator
		}
		out = append(out, line)
	}
	return out
}

// Clone returns an independent copy of the buffer.
func (b Buffer) Clone() Buffer {
	out := make(Buffer, len(b))
	copy(out, b)
	return out
}

// String joins the buffer into file content.
func (b Buffer) String() string {
	return strings.Join(b, "")
}

// Bytes joins the buffer into file content.
func (b Buffer) Bytes() []byte {
	return []byte(b.String())
}

// IsBlank reports whether a line holds nothing but whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
