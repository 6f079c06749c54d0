package middleware

import (
	"github.com/keshon/fileops/internal/command"
	"github.com/keshon/fileops/internal/fileops"
)

// WithDirectoryRequired refuses to run the command until a directory has
// been selected. The refusal happens before any prompt or filesystem access.
func WithDirectoryRequired() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				if err := fileops.RequireDirectory(cmd.Name(), ctx.Session); err != nil {
					return err
				}
				return cmd.Run(ctx)
			},
		}
	}
}
