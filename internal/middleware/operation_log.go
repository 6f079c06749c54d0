package middleware

import (
	"time"

	"go.uber.org/zap"

	"github.com/keshon/fileops/internal/command"
	"github.com/keshon/fileops/internal/fileops"
)

// WithOperationLog logs start, outcome and duration of every run
func WithOperationLog() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				log := ctx.Logger().With(zap.String("op", cmd.Name()))
				start := time.Now()
				log.Debug("operation started", zap.String("dir", ctx.Session.Dir()))

				err := cmd.Run(ctx)
				elapsed := zap.Duration("elapsed", time.Since(start))
				if err != nil {
					log.Warn("operation failed",
						elapsed,
						zap.String("kind", fileops.KindOf(err).String()),
						zap.String("code", string(fileops.CodeOf(err))),
						zap.Error(err),
					)
					return err
				}
				log.Info("operation finished", elapsed)
				return nil
			},
		}
	}
}
