package templates

import "github.com/arthur-debert/pyboot/pkg/lines"

// Body is an embedded fallback body.
type Body interface {
	Lines() lines.Buffer
}

// TextBody is a body held as one block of text.
type TextBody string

// Lines implements Body.
func (b TextBody) Lines() lines.Buffer { return lines.FromText(string(b)) }

// LineBody is a body held as line fragments without terminators.
type LineBody []string

// Lines implements Body.
func (b LineBody) Lines() lines.Buffer { return lines.FromFragments(b) }
