package tui_test

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
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
	"github.com/keshon/fileops/internal/session"
	"github.com/keshon/fileops/internal/tui"
)

func newModel(t *testing.T) (tui.Model, *fs.BillyFS) {
	t.Helper()
	fsys := fs.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll("/data/sub", 0o755))
	require.NoError(t, fsys.WriteFile("/data/a.bin", []byte{0x01, 0xFF}, 0o644))

	cfg := config.Defaults()
	cfg.UI.Color = false
	ctx := &command.Context{
		Session: session.New(),
		FS:      fsys,
		Console: console.New(strings.NewReader(""), &bytes.Buffer{}),
		Log:     zaptest.NewLogger(t),
		Config:  cfg,
	}
	return tui.New(ctx), fsys
}

func send(t *testing.T, m tui.Model, msgs ...tea.Msg) tui.Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(tui.Model)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
)

func TestModel_DigitRequiresDirectory(t *testing.T) {
	m, _ := newModel(t)
	m = send(t, m, runes("3"))
	assert.False(t, m.Inputting())
	assert.Equal(t, "Please select a directory first.", m.Output())
}

func TestModel_SelectAndList(t *testing.T) {
	m, _ := newModel(t)

	m = send(t, m, runes("1"))
	require.True(t, m.Inputting())
	m = send(t, m, runes("/data"), enter)
	assert.False(t, m.Inputting())
	assert.Equal(t, "Directory selected: /data", m.Output())

	m = send(t, m, runes("2"))
	assert.Equal(t, "Contents of directory: /data\n\nDirectories:\nsub\n\nFiles:\na.bin (2 bytes)", m.Output())
	assert.Contains(t, m.View(), "Directory: /data")
}

func TestModel_MirrorThenHex(t *testing.T) {
	m, fsys := newModel(t)
	m = send(t, m, runes("1"), runes("/data"), enter)
	m = send(t, m, runes("5"), runes("a.bin"), enter)
	assert.Equal(t, "File has been mirror reflected.", m.Output())

	got, err := fsys.ReadFile("/data/a.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0xFF}, got)

	m = send(t, m, runes("3"), runes("a.bin"), enter)
	assert.Equal(t, "80 FF", m.Output())
}

func TestModel_InvalidInputStays(t *testing.T) {
	m, _ := newModel(t)
	m = send(t, m, runes("1"), runes("   "), enter)
	assert.True(t, m.Inputting())
	assert.Equal(t, "Invalid input. Please try again.", m.Output())
}

func TestModel_EscCancelsInput(t *testing.T) {
	m, _ := newModel(t)
	m = send(t, m, runes("1"), esc)
	assert.False(t, m.Inputting())
	assert.Empty(t, m.Output())
}

func TestModel_CursorNavigation(t *testing.T) {
	m, _ := newModel(t)
	assert.Equal(t, 1, m.Cursor())

	m = send(t, m, down, down, runes("j"))
	assert.Equal(t, 4, m.Cursor())
	m = send(t, m, down, down, down)
	assert.Equal(t, 5, m.Cursor())
	m = send(t, m, up, runes("k"))
	assert.Equal(t, 3, m.Cursor())

	m = send(t, m, enter)
	assert.Equal(t, "Please select a directory first.", m.Output())
}

func TestModel_Exit(t *testing.T) {
	for name, msg := range map[string]tea.KeyMsg{
		"zero":   runes("0"),
		"q":      runes("q"),
		"ctrl+c": {Type: tea.KeyCtrlC},
	} {
		t.Run(name, func(t *testing.T) {
			m, _ := newModel(t)
			next, cmd := m.Update(msg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, next.(tui.Model).Quitting())
			assert.Empty(t, next.View())
		})
	}
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Contains(t, m.View(), "> 1 - Select directory")
	assert.Contains(t, m.View(), "Select the directory all other options work in.")
}
