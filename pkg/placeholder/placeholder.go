// Package placeholder replaces #{identifier} tokens in template content.
//
// Identifiers missing from the mapping are left untouched, delimiters
// included. The filename key has one collision rule: when the token is
// directly followed by a dotted extension that the replacement already ends
// with, the replacement's own extension is dropped so "#{filename}.py"
// renders "main.py" rather than "main.py.py".
package placeholder

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/pyboot/pkg/lines"
	"github.com/arthur-debert/pyboot/pkg/pyversion"
	"github.com/arthur-debert/pyboot/pkg/types"
)

// Placeholder keys understood by the built-in templates
const (
	KeyProject     = "project"
	KeyDescription = "description"
	KeyAuthor      = "author"
	KeyDate        = "date"
	KeyFilename    = "filename"

	KeyPythonVersion     = "python_version"
	KeyPythonVersionFull = "python_version_full"
	KeyRuffTarget        = "ruff_target"
	KeyPythonNoDot       = "python_nodot"
	KeyCPythonTag        = "cpython_tag"
)

var (
	tokenPattern     = regexp.MustCompile(`#\{([A-Za-z0-9_]+)\}`)
	extensionPattern = regexp.MustCompile(`^(\.[A-Za-z0-9]+)`)
)

var versionKeys = map[pyversion.Style]string{
	pyversion.MajorMinor:      KeyPythonVersion,
	pyversion.MajorMinorPatch: KeyPythonVersionFull,
	pyversion.RuffTarget:      KeyRuffTarget,
	pyversion.NoDot:           KeyPythonNoDot,
	pyversion.CPythonTag:      KeyCPythonTag,
}

// Replace substitutes every known token in buf. The input is normalized
// first and never modified.
func Replace(buf lines.Buffer, values map[string]string) lines.Buffer {
	in := lines.Normalize(buf)
	out := make(lines.Buffer, 0, len(in))
	for _, line := range in {
		out = append(out, replaceLine(line, values))
	}
	return out
}

func replaceLine(line string, values map[string]string) string {
	matches := tokenPattern.FindAllStringSubmatchIndex(line, -1)
	if matches == nil {
		return line
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		key := line[m[2]:m[3]]

		b.WriteString(line[last:start])
		b.WriteString(replacement(key, line[start:end], line[end:], values))
		last = end
	}
	b.WriteString(line[last:])
	return b.String()
}

func replacement(key, token, following string, values map[string]string) string {
	value, ok := values[key]
	if !ok {
		return token
	}

	if key == KeyFilename && value != "" {
		if ext := extensionPattern.FindString(following); ext != "" && strings.HasSuffix(value, ext) {
			return stem(value)
		}
	}
	return value
}

// stem drops the final extension of a file name. Dot files such as
// ".gitignore" have no extension.
func stem(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return name
	}
	return name[:i]
}

// DisplayName upper-cases the first character of a project directory name.
func DisplayName(dirName string) string {
	if dirName == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(dirName)
	return string(unicode.ToUpper(r)) + dirName[size:]
}

// FormatDate renders "D Mon YYYY" with no leading zero on the day.
func FormatDate(ctx types.RenderContext) string {
	d := ctx.Date
	return fmt.Sprintf("%d %s %d", d.Day(), d.Format("Jan"), d.Year())
}

// Values computes the replacement mapping for a render context.
func Values(ctx types.RenderContext) (map[string]string, error) {
	values := map[string]string{
		KeyProject:     ctx.ProjectName,
		KeyDescription: ctx.ProjectName,
		KeyAuthor:      ctx.Author,
		KeyDate:        FormatDate(ctx),
		KeyFilename:    ctx.FileName,
	}

	for style, key := range versionKeys {
		formatted, err := ctx.Version.Format(style)
		if err != nil {
			return nil, err
		}
		values[key] = formatted
	}
	return values, nil
}
