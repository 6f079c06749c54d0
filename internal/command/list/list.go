package list

import (
	"go.uber.org/zap"

	"github.com/keshon/fileops/internal/command"
	"github.com/keshon/fileops/internal/fileops"
	"github.com/keshon/fileops/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string         { return "list" }
func (c *Command) Short() string        { return "2" }
func (c *Command) Brief() string        { return "List directory content" }
func (c *Command) Prompt() string       { return "" }
func (c *Command) NeedsDirectory() bool { return true }
func (c *Command) Help() string {
	return `List the subdirectories and regular files of the selected directory.
Files are shown with their size in bytes. Other entry types are skipped.`
}

func (c *Command) Run(ctx *command.Context) error {
	l, err := fileops.ListDirectory(ctx.FS, ctx.Session)
	if err != nil {
		return err
	}
	ctx.Logger().Debug("listed directory",
		zap.String("path", l.Dir),
		zap.Int("dirs", len(l.Dirs)),
		zap.Int("files", len(l.Files)),
	)
	_, err = l.WriteTo(ctx.Console.Out())
	return err
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
