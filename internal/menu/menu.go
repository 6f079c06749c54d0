// Package menu runs the numbered console menu over the registered commands.
package menu

import (
	"errors"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/keshon/fileops/internal/command"
	"github.com/keshon/fileops/internal/console"
	"github.com/keshon/fileops/internal/fileops"
)

const (
	exitKey     = 0
	choiceLabel = "Select option: "
)

// Menu is the interactive line-oriented loop.
type Menu struct {
	ctx *command.Context
}

func New(ctx *command.Context) *Menu {
	return &Menu{ctx: ctx}
}

// Render prints the menu options, exit first.
func (m *Menu) Render() {
	m.ctx.Console.Printf("%d - Exit\n", exitKey)
	for _, cmd := range command.AllCommands() {
		m.ctx.Console.Printf("%s - %s\n", cmd.Short(), cmd.Brief())
	}
}

// Run loops until the user picks exit or input ends, and returns the
// process exit code.
func (m *Menu) Run() int {
	c := m.ctx.Console
	log := m.ctx.Logger()

	for {
		m.Render()
		n, err := c.ReadChoice(choiceLabel, exitKey, len(command.AllCommands()))
		switch {
		case errors.Is(err, io.EOF):
			c.Println()
			return m.exit()
		case errors.Is(err, console.ErrInvalidChoice):
			c.Failure("Invalid option. Please try again.")
			continue
		case err != nil:
			log.Error("read menu choice", zap.Error(err))
			return m.exit()
		}

		if n == exitKey {
			return m.exit()
		}

		cmd, ok := command.GetCommand(strconv.Itoa(n))
		if !ok {
			c.Failure("Invalid option. Please try again.")
			continue
		}

		if err := cmd.Run(m.ctx); err != nil {
			if errors.Is(err, io.EOF) {
				c.Println()
				return m.exit()
			}
			c.Failure(fileops.Describe(err))
		}
	}
}

func (m *Menu) exit() int {
	m.ctx.Console.Println("Exiting...")
	return 0
}
