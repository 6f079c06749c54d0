package hexview

import (
	"github.com/keshon/fileops/internal/command"
	"github.com/keshon/fileops/internal/fileops"
	"github.com/keshon/fileops/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string         { return "hex" }
func (c *Command) Short() string        { return "3" }
func (c *Command) Brief() string        { return "Display file (hexadecimal view)" }
func (c *Command) Prompt() string       { return "Enter the filename: " }
func (c *Command) NeedsDirectory() bool { return true }
func (c *Command) Help() string {
	return `Print a file of the selected directory as uppercase hex, 16 bytes per line.`
}

func (c *Command) Run(ctx *command.Context) error {
	name, err := ctx.Console.ReadString(c.Prompt())
	if err != nil {
		return err
	}
	return fileops.DisplayHex(ctx.FS, ctx.Session, name, ctx.Console.Out())
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithDirectoryRequired(),
			middleware.WithOperationLog(),
		),
	)
}
