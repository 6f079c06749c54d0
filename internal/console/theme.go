package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#66bb6a"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#c62828", Dark: "#ef5350"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#0277bd", Dark: "#4fc3f7"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9e9e9e"}
)

type styles struct {
	success lipgloss.Style
	failure lipgloss.Style
	prompt  lipgloss.Style
}

// newStyles binds styles to a renderer for out, so color is only emitted
// when out is a terminal.
func newStyles(out io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(out)
	if !color {
		plain := r.NewStyle()
		return styles{success: plain, failure: plain, prompt: plain}
	}
	return styles{
		success: r.NewStyle().Foreground(ColorSuccess),
		failure: r.NewStyle().Foreground(ColorError).Bold(true),
		prompt:  r.NewStyle().Foreground(ColorMuted),
	}
}
