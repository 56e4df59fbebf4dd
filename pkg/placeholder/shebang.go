package placeholder

import (
	"strings"

	"github.com/arthur-debert/pyboot/pkg/lines"
)

const envLauncher = "/usr/bin/env"

// CanonicalShebang returns the shebang line for an interpreter found via env.
func CanonicalShebang(interpreter string) string {
	return "#!" + envLauncher + " " + interpreter + lines.Terminator
}

// NormalizeShebang rewrites the first line to the canonical shebang when it
// is an env-based shebang for the interpreter. Other content is untouched.
func NormalizeShebang(buf lines.Buffer, interpreter string) lines.Buffer {
	out := lines.Normalize(buf)
	first := strings.TrimSpace(out[0])

	if strings.HasPrefix(first, "#!") &&
		strings.Contains(first, envLauncher) &&
		strings.Contains(first, interpreter) {
		out[0] = CanonicalShebang(interpreter)
	}
	return out
}
