package upsert

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/pyboot/pkg/lines"
	"github.com/arthur-debert/pyboot/pkg/logging"
	"github.com/arthur-debert/pyboot/pkg/pyversion"
	"github.com/arthur-debert/pyboot/pkg/types"
)

var anyHeaderPattern = regexp.MustCompile(`^\s*\[[^\]]+\]\s*$`)

// SectionKey upserts a quoted string assignment inside a named section.
type SectionKey struct {
	// Section is the header name without brackets, e.g. "environment"
	Section string

	// Key is the assignment key, e.g. "python-version"
	Key string

	// Style selects how the project version renders as the value
	Style pyversion.Style
}

var (
	_ types.Transform = SectionKey{}
	_ types.Checker   = SectionKey{}
)

// Name implements types.Transform.
func (s SectionKey) Name() string { return "section:" + s.Section + "." + s.Key }

// Apply implements types.Transform.
func (s SectionKey) Apply(buf lines.Buffer, ctx types.RenderContext) (lines.Buffer, error) {
	value, err := ctx.Version.Format(s.Style)
	if err != nil {
		return nil, err
	}
	return s.Upsert(buf, value), nil
}

// Check reports an unknown Style before any content is touched.
func (s SectionKey) Check(version pyversion.Version) error {
	_, err := version.Format(s.Style)
	return err
}

// Upsert sets Section.Key to value in buf and returns the new buffer.
func (s SectionKey) Upsert(buf lines.Buffer, value string) lines.Buffer {
	logger := logging.GetLogger("upsert.section")
	desired := assignment(s.Key, value)
	in := lines.Normalize(buf)

	header := regexp.MustCompile(`^\s*\[` + regexp.QuoteMeta(s.Section) + `\]\s*$`)
	start := -1
	for i, line := range in {
		if header.MatchString(line) {
			start = i
			break
		}
	}

	if start < 0 {
		logger.Debug().Str("section", s.Section).Msg("prepending missing section")
		out := lines.Buffer{"[" + s.Section + "]" + lines.Terminator, desired, lines.Terminator}
		return append(out, in...)
	}

	end := len(in)
	for i := start + 1; i < len(in); i++ {
		if anyHeaderPattern.MatchString(in[i]) {
			end = i
			break
		}
	}

	section := append(lines.Buffer{}, in[start:end]...)

	key := assignmentPattern(s.Key)
	replaced := false
	for i, line := range section {
		if key.MatchString(strings.TrimSpace(line)) {
			section[i] = desired
			replaced = true
			break
		}
	}
	if !replaced {
		section = insertLine(section, 1, desired)
	}

	for len(section) > 0 && section[len(section)-1] == lines.Terminator {
		section = section[:len(section)-1]
	}
	section = append(section, lines.Terminator, lines.Terminator)

	logger.Debug().
		Str("section", s.Section).
		Bool("replaced", replaced).
		Msg("upserted section key")

	out := make(lines.Buffer, 0, start+len(section)+len(in)-end)
	out = append(out, in[:start]...)
	out = append(out, section...)
	return append(out, in[end:]...)
}
