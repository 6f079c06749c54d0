package selectdir

import (
	"github.com/keshon/fileops/internal/command"
	"github.com/keshon/fileops/internal/fileops"
	"github.com/keshon/fileops/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string         { return "select" }
func (c *Command) Short() string        { return "1" }
func (c *Command) Brief() string        { return "Select directory" }
func (c *Command) Prompt() string       { return "Enter the absolute path of the directory: " }
func (c *Command) NeedsDirectory() bool { return false }
func (c *Command) Help() string {
	return `Select the directory all other options work in.

A relative path is resolved against the current working directory.
The previous selection is kept when the path is not a directory.`
}

func (c *Command) Run(ctx *command.Context) error {
	path, err := ctx.Console.ReadString(c.Prompt())
	if err != nil {
		return err
	}

	dir, err := fileops.SelectDirectory(ctx.FS, ctx.Session, path)
	if err != nil {
		return err
	}
	ctx.Console.Success("Directory selected: " + dir)
	return nil
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithOperationLog(),
		),
	)
}
