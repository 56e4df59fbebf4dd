package pyversion

import (
	"github.com/arthur-debert/pyboot/pkg/errors"
)

// Style selects a textual representation of a Version.
type Style int

const (
	// MajorMinor renders "X.Y"
	MajorMinor Style = iota
	// MajorMinorPatch renders "X.Y.Z", or "X.Y" when no patch was declared
	MajorMinorPatch
	// RuffTarget renders "pyXYY"
	RuffTarget
	// NoDot renders "XYY"
	NoDot
	// CPythonTag renders "cpXYY"
	CPythonTag
)

var styleNames = map[Style]string{
	MajorMinor:      "majorMinor",
	MajorMinorPatch: "majorMinorPatch",
	RuffTarget:      "ruffTarget",
	NoDot:           "noDot",
	CPythonTag:      "cpythonTag",
}

// Styles lists every defined style in declaration order.
func Styles() []Style {
	return []Style{MajorMinor, MajorMinorPatch, RuffTarget, NoDot, CPythonTag}
}

// String returns the style's textual name.
func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStyle maps a style name such as "ruffTarget" to its Style.
func ParseStyle(name string) (Style, error) {
	for style, styleName := range styleNames {
		if styleName == name {
			return style, nil
		}
	}
	return 0, errors.Newf(errors.ErrInvalidInput, "unknown version style: %q", name)
}
