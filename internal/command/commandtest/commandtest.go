// Package commandtest builds command contexts over an in-memory filesystem
// for command tests.
package commandtest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/keshon/fileops/internal/command"
	"github.com/keshon/fileops/internal/config"
	"github.com/keshon/fileops/internal/console"
	"github.com/keshon/fileops/internal/fs"
	"github.com/keshon/fileops/internal/session"
)

// WorkDir is the directory Env creates and selects.
const WorkDir = "/work"

// Env is a command context plus the buffer its console writes to.
type Env struct {
	Ctx *command.Context
	FS  *fs.BillyFS
	Out *bytes.Buffer
}

// New returns an Env whose console reads input, with WorkDir holding files
// and selected in the session.
func New(t *testing.T, input string, files map[string][]byte) *Env {
	t.Helper()
	env := NewUnselected(t, input)
	require.NoError(t, env.FS.MkdirAll(WorkDir, 0o755))
	for name, data := range files {
		require.NoError(t, env.FS.WriteFile(WorkDir+"/"+name, data, 0o644))
	}
	env.Ctx.Session.Select(WorkDir)
	return env
}

// NewUnselected returns an Env with an empty filesystem and no directory
// selected.
func NewUnselected(t *testing.T, input string) *Env {
	t.Helper()
	out := &bytes.Buffer{}
	fsys := fs.NewMemoryFS()
	return &Env{
		Ctx: &command.Context{
			Session: session.New(),
			FS:      fsys,
			Console: console.New(strings.NewReader(input), out, console.WithColor(false)),
			Log:     zaptest.NewLogger(t),
			Config:  config.Defaults(),
		},
		FS:  fsys,
		Out: out,
	}
}

// Lookup returns the registered command for key, failing the test if
// there is none.
func Lookup(t *testing.T, key string) command.Command {
	t.Helper()
	cmd, ok := command.GetCommand(key)
	require.True(t, ok, "command %q not registered", key)
	return cmd
}
