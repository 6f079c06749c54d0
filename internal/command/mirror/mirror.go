package mirror

import (
	"go.uber.org/zap"

	"github.com/keshon/fileops/internal/command"
	"github.com/keshon/fileops/internal/fileops"
	"github.com/keshon/fileops/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string         { return "mirror" }
func (c *Command) Short() string        { return "5" }
func (c *Command) Brief() string        { return "Mirror reflect file (byte level)" }
func (c *Command) Prompt() string       { return "Enter the filename to mirror reflect: " }
func (c *Command) NeedsDirectory() bool { return true }
func (c *Command) Help() string {
	return `Reverse the bit order of every byte of a file in place.
Running it twice restores the original content.

With verify_mirror enabled the file is read back after writing and its
xxh3-128 digest compared against the transformed buffer.`
}

func (c *Command) Run(ctx *command.Context) error {
	name, err := ctx.Console.ReadString(c.Prompt())
	if err != nil {
		return err
	}

	res, err := fileops.MirrorReflect(ctx.FS, ctx.Session, name, fileops.MirrorOptions{
		Verify: ctx.Settings().VerifyMirror,
	})
	if err != nil {
		return err
	}
	ctx.Logger().Debug("file mirror reflected",
		zap.String("path", res.Path),
		zap.Int("size", res.Size),
		zap.String("xxh3", res.Checksum()),
	)
	ctx.Console.Success("File has been mirror reflected.")
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
