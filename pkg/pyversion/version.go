// Package pyversion parses a project's declared interpreter version and
// renders it in the textual forms the scaffolded config files need.
//
// A Version is an immutable value: it is parsed once from the project's
// .python-version file and handed to every component that formats it.
package pyversion

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/pyboot/pkg/errors"
)

// FileName is the version declaration file expected at the project root
const FileName = ".python-version"

var versionPattern = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// Version is a MAJOR.MINOR[.PATCH] interpreter version.
type Version struct {
	raw      string
	major    int
	minor    int
	patch    int
	hasPatch bool
}

// Parse extracts the first MAJOR.MINOR or MAJOR.MINOR.PATCH occurrence from
// free text. Text without such a pattern is an ErrVersionParse error.
func Parse(text string) (Version, error) {
	raw := strings.TrimSpace(text)

	m := versionPattern.FindStringSubmatch(raw)
	if m == nil {
		return Version{}, errors.Newf(errors.ErrVersionParse,
			"could not parse %s content: %q", FileName, raw).
			WithDetail("content", raw)
	}

	v := Version{raw: raw}
	var err error
	if v.major, err = strconv.Atoi(m[1]); err != nil {
		return Version{}, errors.Wrapf(err, errors.ErrVersionParse, "invalid major version in %q", raw)
	}
	if v.minor, err = strconv.Atoi(m[2]); err != nil {
		return Version{}, errors.Wrapf(err, errors.ErrVersionParse, "invalid minor version in %q", raw)
	}
	if m[3] != "" {
		if v.patch, err = strconv.Atoi(m[3]); err != nil {
			return Version{}, errors.Wrapf(err, errors.ErrVersionParse, "invalid patch version in %q", raw)
		}
		v.hasPatch = true
	}
	return v, nil
}

// MustParse is Parse for literals in tests and defaults. It panics on error.
func MustParse(text string) Version {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// Raw returns the trimmed declaration text the version was parsed from.
func (v Version) Raw() string { return v.raw }

// Major returns the major component.
func (v Version) Major() int { return v.major }

// Minor returns the minor component.
func (v Version) Minor() int { return v.minor }

// Patch returns the patch component and whether it was declared.
func (v Version) Patch() (int, bool) { return v.patch, v.hasPatch }

// Format renders the version in the given style.
func (v Version) Format(style Style) (string, error) {
	switch style {
	case MajorMinor:
		return fmt.Sprintf("%d.%d", v.major, v.minor), nil
	case MajorMinorPatch:
		if !v.hasPatch {
			return fmt.Sprintf("%d.%d", v.major, v.minor), nil
		}
		return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch), nil
	case RuffTarget:
		return fmt.Sprintf("py%d%02d", v.major, v.minor), nil
	case NoDot:
		return fmt.Sprintf("%d%02d", v.major, v.minor), nil
	case CPythonTag:
		return fmt.Sprintf("cp%d%02d", v.major, v.minor), nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown version style: %d", int(style))
	}
}

// String renders the version as MAJOR.MINOR[.PATCH].
func (v Version) String() string {
	s, _ := v.Format(MajorMinorPatch)
	return s
}
