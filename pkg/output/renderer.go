package output

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/pyboot/pkg/commands/bootstrap"
	"github.com/arthur-debert/pyboot/pkg/errors"
	"github.com/arthur-debert/pyboot/pkg/logging"
	"github.com/arthur-debert/pyboot/pkg/writegate"
	"github.com/charmbracelet/lipgloss"
)

// DryRunPrefix starts every status line of a dry run
const DryRunPrefix = "[DRY RUN] "

// Renderer writes status lines to one writer.
type Renderer struct {
	writer io.Writer
	format Format
	styles styles
}

// NewRenderer creates a renderer for w. FormatAuto detects the format when
// w is a file and falls back to plain text otherwise.
func NewRenderer(w io.Writer, format Format) *Renderer {
	if format == FormatAuto {
		format = FormatText
		if f, ok := w.(*os.File); ok {
			format = DetectFormat(f)
		}
	}

	logger := logging.GetLogger("output")
	logger.Debug().Str("format", format.String()).Msg("Renderer created")

	return &Renderer{
		writer: w,
		format: format,
		styles: newStyles(lipgloss.NewRenderer(w)),
	}
}

// Format returns the resolved output format.
func (r *Renderer) Format() Format { return r.format }

// Render writes one line per template outcome.
func (r *Renderer) Render(result *bootstrap.Result) error {
	for _, o := range result.Outcomes {
		if _, err := fmt.Fprintln(r.writer, r.line(o, result.DryRun)); err != nil {
			return err
		}
	}
	return nil
}

// RenderError writes a fatal error message.
func (r *Renderer) RenderError(err error) error {
	msg := ErrorMessage(err)
	if r.format == FormatTerminal {
		msg = r.styles.failed.Render(msg)
	}
	_, writeErr := fmt.Fprintln(r.writer, msg)
	return writeErr
}

// StatusLine is the plain text status line of one outcome.
func StatusLine(o bootstrap.Outcome, dryRun bool) string {
	return plain.line(o, dryRun)
}

var plain = &Renderer{format: FormatText}

func (r *Renderer) line(o bootstrap.Outcome, dryRun bool) string {
	styled := r.format == FormatTerminal
	paint := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	if dryRun {
		b.WriteString(paint(r.styles.dryRun, strings.TrimSpace(DryRunPrefix)))
		b.WriteString(" ")
	}

	path := paint(r.styles.path, o.Path)

	switch {
	case o.Err != nil:
		fmt.Fprintf(&b, "%s: %s: %s", paint(r.styles.failed, "Failed"), path, ErrorMessage(o.Err))
	case o.Decision == writegate.Skipped:
		fmt.Fprintf(&b, "%s: %s", paint(r.styles.skipped, "Skipped (exists)"), path)
	default:
		action := paint(r.styles.wrote, o.Decision.String())
		if o.Decision == writegate.WouldWrite {
			action = paint(r.styles.would, o.Decision.String())
		}
		fmt.Fprintf(&b, "%s: %s %s", action, path, paint(r.styles.muted, "from "+o.SourceLabel))
		if o.Forced() {
			b.WriteString(" ")
			b.WriteString(paint(r.styles.forced, "(forced)"))
		}
	}
	return b.String()
}

// ErrorMessage returns the user facing text of an error: the message of a
// coded error without its code, followed by any wrapped cause.
func ErrorMessage(err error) string {
	var pyErr *errors.PybootError
	if !stderrors.As(err, &pyErr) {
		return err.Error()
	}
	if pyErr.Wrapped == nil {
		return pyErr.Message
	}
	return pyErr.Message + ": " + ErrorMessage(pyErr.Wrapped)
}
