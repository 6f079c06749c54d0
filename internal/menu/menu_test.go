package menu_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/keshon/fileops/internal/command"
	_ "github.com/keshon/fileops/internal/command/hexview"
	_ "github.com/keshon/fileops/internal/command/list"
	_ "github.com/keshon/fileops/internal/command/mirror"
	_ "github.com/keshon/fileops/internal/command/remove"
	_ "github.com/keshon/fileops/internal/command/selectdir"
	"github.com/keshon/fileops/internal/config"
	"github.com/keshon/fileops/internal/console"
	"github.com/keshon/fileops/internal/fs"
	"github.com/keshon/fileops/internal/menu"
	"github.com/keshon/fileops/internal/session"
)

const menuText = "0 - Exit\n" +
	"1 - Select directory\n" +
	"2 - List directory content\n" +
	"3 - Display file (hexadecimal view)\n" +
	"4 - Delete file\n" +
	"5 - Mirror reflect file (byte level)\n" +
	"Select option: "

func run(t *testing.T, fsys fs.FS, input string) (int, string) {
	t.Helper()
	var out bytes.Buffer
	ctx := &command.Context{
		Session: session.New(),
		FS:      fsys,
		Console: console.New(strings.NewReader(input), &out, console.WithColor(false)),
		Log:     zaptest.NewLogger(t),
		Config:  config.Defaults(),
	}
	code := menu.New(ctx).Run()
	return code, out.String()
}

func TestMenu_ExitImmediately(t *testing.T) {
	code, out := run(t, fs.NewMemoryFS(), "0\n")
	assert.Equal(t, 0, code)
	assert.Equal(t, menuText+"Exiting...\n", out)
}

func TestMenu_EndOfInputExits(t *testing.T) {
	code, out := run(t, fs.NewMemoryFS(), "")
	assert.Equal(t, 0, code)
	assert.Equal(t, menuText+"\nExiting...\n", out)
}

func TestMenu_InvalidOptions(t *testing.T) {
	_, out := run(t, fs.NewMemoryFS(), "7\nabc\n-1\n0\n")
	assert.Equal(t, 3, strings.Count(out, "Invalid option. Please try again.\n"))
	assert.Equal(t, 4, strings.Count(out, menuText))
}

func TestMenu_RequiresDirectoryWithoutPrompting(t *testing.T) {
	for _, choice := range []string{"2", "3", "4", "5"} {
		t.Run(choice, func(t *testing.T) {
			_, out := run(t, fs.NewMemoryFS(), choice+"\n0\n")
			assert.Equal(t, menuText+"Please select a directory first.\n"+menuText+"Exiting...\n", out)
		})
	}
}

func TestMenu_InvalidDirectoryThenList(t *testing.T) {
	fsys := fs.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll("/data/sub", 0o755))
	require.NoError(t, fsys.WriteFile("/data/a.txt", []byte("abc"), 0o644))

	_, out := run(t, fsys, "1\n/nope\n2\n1\n/data\n2\n0\n")
	assert.Contains(t, out, "Invalid directory. Please try again.\n")
	assert.Contains(t, out, "Please select a directory first.\n")
	assert.Contains(t, out, "Directory selected: /data\n")
	assert.Contains(t, out, "Contents of directory: /data\n\nDirectories:\nsub\n\nFiles:\na.txt (3 bytes)\n")
}

func TestMenu_EndOfInputDuringPrompt(t *testing.T) {
	code, out := run(t, fs.NewMemoryFS(), "1\n")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasSuffix(out, "Enter the absolute path of the directory: \nExiting...\n"))
}

func TestMenu_SessionOnOS(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "f.bin")
	require.NoError(t, os.WriteFile(p, []byte{0x01, 0x80}, 0o644))

	input := strings.Join([]string{
		"1", dir,
		"3", "f.bin",
		"5", "f.bin",
		"3", "f.bin",
		"4", "f.bin",
		"4", "f.bin",
		"0",
	}, "\n") + "\n"
	code, out := run(t, fs.NewOSFS(), input)
	assert.Equal(t, 0, code)

	assert.Contains(t, out, "Directory selected: "+dir+"\n")
	assert.Contains(t, out, "Enter the filename: 01 80\n")
	assert.Contains(t, out, "File has been mirror reflected.\n")
	assert.Contains(t, out, "Enter the filename: 80 01\n")
	assert.Contains(t, out, "File successfully deleted.\n")
	assert.Contains(t, out, "Enter the filename to delete: File does not exist in the selected directory.\n")
	assert.NoFileExists(t, p)
}
