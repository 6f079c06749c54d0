package selectdir_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/fileops/internal/command/commandtest"
	_ "github.com/keshon/fileops/internal/command/selectdir"
	"github.com/keshon/fileops/internal/fileops"
)

func TestSelect(t *testing.T) {
	env := commandtest.NewUnselected(t, "/data\n")
	require.NoError(t, env.FS.MkdirAll("/data", 0o755))

	require.NoError(t, commandtest.Lookup(t, "1").Run(env.Ctx))
	assert.Equal(t, "/data", env.Ctx.Session.Dir())
	assert.Equal(t,
		"Enter the absolute path of the directory: Directory selected: /data\n",
		env.Out.String())
}

func TestSelect_RepromptsOnEmptyInput(t *testing.T) {
	env := commandtest.NewUnselected(t, "   \n/data\n")
	require.NoError(t, env.FS.MkdirAll("/data", 0o755))

	require.NoError(t, commandtest.Lookup(t, "select").Run(env.Ctx))
	assert.Contains(t, env.Out.String(), "Invalid input. Please try again: Directory selected: /data\n")
}

func TestSelect_InvalidKeepsPrevious(t *testing.T) {
	env := commandtest.New(t, "/missing\n", nil)

	err := commandtest.Lookup(t, "1").Run(env.Ctx)
	require.Error(t, err)
	assert.Equal(t, fileops.KindInvalidDirectory, fileops.KindOf(err))
	assert.Equal(t, commandtest.WorkDir, env.Ctx.Session.Dir())
}

func TestSelect_EndOfInput(t *testing.T) {
	env := commandtest.NewUnselected(t, "")
	err := commandtest.Lookup(t, "1").Run(env.Ctx)
	assert.ErrorIs(t, err, io.EOF)
	assert.False(t, env.Ctx.Session.Selected())
}
