package upsert

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/arthur-debert/pyboot/pkg/lines"
	"github.com/arthur-debert/pyboot/pkg/logging"
	"github.com/arthur-debert/pyboot/pkg/pyversion"
	"github.com/arthur-debert/pyboot/pkg/types"
)

// FlatKey upserts a top level quoted string assignment.
type FlatKey struct {
	// Key is the assignment key, e.g. "target-version"
	Key string

	// Style selects how the project version renders as the value
	Style pyversion.Style

	// Anchors are keys after whose last occurrence a new line is inserted
	Anchors []string
}

var (
	_ types.Transform = FlatKey{}
	_ types.Checker   = FlatKey{}
)

// Name implements types.Transform.
func (f FlatKey) Name() string { return "flat:" + f.Key }

// Apply implements types.Transform.
func (f FlatKey) Apply(buf lines.Buffer, ctx types.RenderContext) (lines.Buffer, error) {
	value, err := ctx.Version.Format(f.Style)
	if err != nil {
		return nil, err
	}
	return f.Upsert(buf, value), nil
}

// Check reports an unknown Style before any content is touched.
func (f FlatKey) Check(version pyversion.Version) error {
	_, err := version.Format(f.Style)
	return err
}

// Upsert sets Key to value in buf and returns the new buffer.
func (f FlatKey) Upsert(buf lines.Buffer, value string) lines.Buffer {
	logger := logging.GetLogger("upsert.flat")
	desired := assignment(f.Key, value)
	out := lines.Normalize(buf).Clone()

	active := assignmentPattern(f.Key)
	for i, line := range out {
		if active.MatchString(strings.TrimSpace(line)) {
			out[i] = desired
			logger.Debug().Str("key", f.Key).Int("line", i).Msg("replaced assignment")
			return out
		}
	}

	insertAt := 0
	if anchor := f.lastAnchor(out); anchor >= 0 {
		insertAt = anchor + 1
		if insertAt < len(out) && !lines.IsBlank(out[insertAt]) {
			out = insertLine(out, insertAt, lines.Terminator)
			insertAt++
		}
	} else {
		insertAt = firstContentLine(out)
	}

	logger.Debug().Str("key", f.Key).Int("line", insertAt).Msg("inserted assignment")
	return insertLine(out, insertAt, desired)
}

func (f FlatKey) lastAnchor(buf lines.Buffer) int {
	if len(f.Anchors) == 0 {
		return -1
	}

	quoted := make([]string, len(f.Anchors))
	for i, a := range f.Anchors {
		quoted[i] = regexp.QuoteMeta(a)
	}
	anchorPattern := regexp.MustCompile(`^\s*(` + strings.Join(quoted, "|") + `)\s*=\s*`)

	last := -1
	for i, line := range buf {
		if anchorPattern.MatchString(line) {
			last = i
		}
	}
	return last
}

// firstContentLine returns the index of the first line that is neither
// blank nor a comment, or 0 when every line is.
func firstContentLine(buf lines.Buffer) int {
	for i, line := range buf {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return i
	}
	return 0
}

func assignment(key, value string) string {
	return fmt.Sprintf(`%s = "%s"%s`, key, value, lines.Terminator)
}

// assignmentPattern matches an active `key = "..."` line once trimmed.
func assignmentPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`^\s*` + regexp.QuoteMeta(key) + `\s*=\s*"[^"]*"\s*$`)
}

func insertLine(buf lines.Buffer, at int, line string) lines.Buffer {
	out := make(lines.Buffer, 0, len(buf)+1)
	out = append(out, buf[:at]...)
	out = append(out, line)
	return append(out, buf[at:]...)
}
