package placeholder

import (
	"github.com/arthur-debert/pyboot/pkg/lines"
	"github.com/arthur-debert/pyboot/pkg/types"
)

// DefaultInterpreter is used when the context names no interpreter
const DefaultInterpreter = "python3"

// Substitution is the content transform for header-stamped templates:
// placeholder replacement followed by shebang normalization.
type Substitution struct{}

var _ types.Transform = Substitution{}

// Name implements types.Transform.
func (Substitution) Name() string { return "placeholders" }

// Apply implements types.Transform.
func (Substitution) Apply(buf lines.Buffer, ctx types.RenderContext) (lines.Buffer, error) {
	values, err := Values(ctx)
	if err != nil {
		return nil, err
	}

	interpreter := ctx.Interpreter
	if interpreter == "" {
		interpreter = DefaultInterpreter
	}

	return NormalizeShebang(Replace(buf, values), interpreter), nil
}
