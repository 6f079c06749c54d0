package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keshon/fileops/internal/command"
)

// Run starts the full-screen program and blocks until the user exits.
func Run(ctx *command.Context, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(New(ctx), opts...).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
