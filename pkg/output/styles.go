package output

import "github.com/charmbracelet/lipgloss"

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	SuccessColor = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFC107", Dark: "#FFD54F"}
	InfoColor    = lipgloss.AdaptiveColor{Light: "#17A2B8", Dark: "#4DD0E1"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}
	PathColor    = lipgloss.AdaptiveColor{Light: "#007ACC", Dark: "#3D9EFF"}
)

// styles are bound to the renderer of one writer
type styles struct {
	dryRun  lipgloss.Style
	wrote   lipgloss.Style
	would   lipgloss.Style
	skipped lipgloss.Style
	failed  lipgloss.Style
	path    lipgloss.Style
	muted   lipgloss.Style
	forced  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		dryRun:  r.NewStyle().Foreground(WarningColor).Bold(true),
		wrote:   r.NewStyle().Foreground(SuccessColor).Bold(true),
		would:   r.NewStyle().Foreground(InfoColor).Bold(true),
		skipped: r.NewStyle().Foreground(MutedColor),
		failed:  r.NewStyle().Foreground(ErrorColor).Bold(true),
		path:    r.NewStyle().Foreground(PathColor),
		muted:   r.NewStyle().Foreground(MutedColor),
		forced:  r.NewStyle().Foreground(WarningColor),
	}
}
