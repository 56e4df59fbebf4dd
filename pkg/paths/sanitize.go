package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pyboot/pkg/errors"
)

// Root is the sanitized form of the project root itself
const Root = "."

const (
	homeMarker   = "~"
	parentMarker = ".."
)

// Sanitize maps a declared relative output directory to a path inside the
// project root. The returned path is relative and cleaned. redirected is
// true when the candidate was collapsed to the root or had its root
// stripped.
func Sanitize(candidate string) (safe string, redirected bool) {
	if strings.Contains(candidate, homeMarker) {
		return Root, true
	}

	for _, segment := range splitSegments(candidate) {
		if segment == parentMarker {
			return Root, true
		}
	}

	if isAbsolute(candidate) {
		rest := stripRoot(candidate)
		if rest == "" {
			return Root, true
		}
		return filepath.Clean(rest), true
	}

	return filepath.Clean(candidate), false
}

// SanitizeStrict is Sanitize for strict mode: any candidate that would be
// redirected is an ErrUnsafePath error instead.
func SanitizeStrict(candidate string) (string, error) {
	safe, redirected := Sanitize(candidate)
	if redirected {
		return "", errors.Newf(errors.ErrUnsafePath,
			"output path %q escapes the project root", candidate).
			WithDetail("path", candidate)
	}
	return safe, nil
}

func splitSegments(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == os.PathSeparator
	})
}

func isAbsolute(path string) bool {
	if filepath.IsAbs(path) || filepath.VolumeName(path) != "" {
		return true
	}
	return strings.HasPrefix(path, "/") || strings.HasPrefix(path, string(os.PathSeparator))
}

func stripRoot(path string) string {
	path = strings.TrimPrefix(path, filepath.VolumeName(path))
	return strings.TrimLeft(path, "/"+string(os.PathSeparator))
}
