package types

import (
	"time"

	"github.com/arthur-debert/pyboot/pkg/lines"
	"github.com/arthur-debert/pyboot/pkg/pyversion"
)

// RenderContext carries the read-only values a transform may draw on.
// It is built once per run; FileName is set per template.
type RenderContext struct {
	// Version is the project's declared interpreter version
	Version pyversion.Version

	// ProjectName is the display name derived from the project directory
	ProjectName string

	// Author may be empty when no lookup succeeded
	Author string

	// Date is the run date used for header stamps
	Date time.Time

	// FileName is the bare output file name of the current template
	FileName string

	// Interpreter is the executable named in the canonical shebang
	Interpreter string
}

// ForFile returns a copy of the context bound to a template's file name.
func (c RenderContext) ForFile(name string) RenderContext {
	c.FileName = name
	return c
}

// Transform rewrites a template's resolved content before it is written.
// Implementations must be idempotent and must not retain the input buffer.
type Transform interface {
	// Name identifies the transform in logs
	Name() string

	// Apply returns the rewritten buffer
	Apply(buf lines.Buffer, ctx RenderContext) (lines.Buffer, error)
}

// Checker is implemented by transforms whose configuration can be verified
// against the project version before any template is written.
type Checker interface {
	Check(version pyversion.Version) error
}
