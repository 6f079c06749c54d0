package command

import (
	"go.uber.org/zap"

	"github.com/keshon/fileops/internal/config"
	"github.com/keshon/fileops/internal/console"
	"github.com/keshon/fileops/internal/fs"
	"github.com/keshon/fileops/internal/session"
)

// Command represents a menu option
type Command interface {
	Name() string
	Short() string // menu key
	Brief() string // menu label
	Help() string
	Prompt() string // input label, empty when the command reads no input
	NeedsDirectory() bool
	Run(ctx *Context) error
}

// Context carries the menu loop state into a command
type Context struct {
	Session *session.Session
	FS      fs.FS
	Console *console.Console
	Log     *zap.Logger
	Config  *config.Config
}

// Logger returns the context logger, or a no-op logger when unset.
func (c *Context) Logger() *zap.Logger {
	if c.Log == nil {
		return zap.NewNop()
	}
	return c.Log
}

// Settings returns the context config, or the defaults when unset.
func (c *Context) Settings() *config.Config {
	if c.Config == nil {
		return config.Defaults()
	}
	return c.Config
}
