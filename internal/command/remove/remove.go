package remove

import (
	"go.uber.org/zap"

	"github.com/keshon/fileops/internal/command"
	"github.com/keshon/fileops/internal/fileops"
	"github.com/keshon/fileops/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string         { return "delete" }
func (c *Command) Short() string        { return "4" }
func (c *Command) Brief() string        { return "Delete file" }
func (c *Command) Prompt() string       { return "Enter the filename to delete: " }
func (c *Command) NeedsDirectory() bool { return true }
func (c *Command) Help() string {
	return `Delete a regular file from the selected directory. There is no undo.`
}

func (c *Command) Run(ctx *command.Context) error {
	name, err := ctx.Console.ReadString(c.Prompt())
	if err != nil {
		return err
	}

	p, err := fileops.DeleteFile(ctx.FS, ctx.Session, name)
	if err != nil {
		return err
	}
	ctx.Logger().Info("file deleted", zap.String("path", p))
	ctx.Console.Success("File successfully deleted.")
	return nil
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
