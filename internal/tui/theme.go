package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/keshon/fileops/internal/console"
)

type styles struct {
	title  lipgloss.Style
	cursor lipgloss.Style
	muted  lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{title: plain.Bold(true), cursor: plain.Bold(true), muted: plain}
	}
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(console.ColorInfo),
		cursor: lipgloss.NewStyle().Bold(true).Foreground(console.ColorSuccess),
		muted:  lipgloss.NewStyle().Foreground(console.ColorMuted),
	}
}
