// Package tui is a full-screen front end over the registered commands.
package tui

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/keshon/fileops/internal/command"
	"github.com/keshon/fileops/internal/config"
	"github.com/keshon/fileops/internal/console"
	"github.com/keshon/fileops/internal/fileops"
)

type state int

const (
	stateMenu state = iota
	stateInput
)

// item is a menu row. The exit row has no command.
type item struct {
	key   string
	label string
	cmd   command.Command
}

// Model is the root bubbletea model.
type Model struct {
	ctx    *command.Context
	items  []item
	cursor int
	state  state
	active command.Command

	input  textinput.Model
	output viewport.Model
	text   string

	width    int
	height   int
	quitting bool
	styles   styles
}

func New(ctx *command.Context) Model {
	items := []item{{key: "0", label: "Exit"}}
	for _, cmd := range command.AllCommands() {
		items = append(items, item{key: cmd.Short(), label: cmd.Brief(), cmd: cmd})
	}

	ti := textinput.New()
	ti.Prompt = "> "

	return Model{
		ctx:    ctx,
		items:  items,
		cursor: 1,
		input:  ti,
		output: viewport.New(80, 10),
		styles: newStyles(ctx.Settings().UI.Color),
	}
}

// Output returns the text of the last command run.
func (m Model) Output() string { return m.text }

// Inputting reports whether a command is waiting for its input value.
func (m Model) Inputting() bool { return m.state == stateInput }

// Quitting reports whether exit was chosen.
func (m Model) Quitting() bool { return m.quitting }

// Cursor returns the index of the highlighted menu row; row 0 is exit.
func (m Model) Cursor() int { return m.cursor }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.output.Width = msg.Width
		m.output.Height = max(msg.Height-len(m.items)-8, 3)
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		if m.state == stateInput {
			return m.updateInput(msg)
		}
		return m.updateMenu(msg)
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q":
		return m.quit()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		return m.choose()
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	default:
		if _, err := strconv.Atoi(key); err == nil {
			for i, it := range m.items {
				if it.key == key {
					m.cursor = i
					return m.choose()
				}
			}
		}
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = stateMenu
		m.active = nil
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		if value == "" || utf8.RuneCountInString(value) > config.MaxInputLength {
			m.setOutput("Invalid input. Please try again.")
			return m, nil
		}
		cmd := m.active
		m.state = stateMenu
		m.active = nil
		m.input.Blur()
		m.execute(cmd, value)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// choose acts on the highlighted row.
func (m Model) choose() (tea.Model, tea.Cmd) {
	it := m.items[m.cursor]
	if it.cmd == nil {
		return m.quit()
	}

	// Commands without input, or refused for lack of a directory, run
	// straight away.
	if it.cmd.Prompt() == "" || (it.cmd.NeedsDirectory() && !m.ctx.Session.Selected()) {
		m.execute(it.cmd, "")
		return m, nil
	}

	m.active = it.cmd
	m.state = stateInput
	m.input.Reset()
	m.input.Placeholder = strings.TrimSuffix(it.cmd.Prompt(), ": ")
	blink := m.input.Focus()
	return m, blink
}

// execute runs cmd with value as its only input line and captures what it
// prints.
func (m *Model) execute(cmd command.Command, value string) {
	var buf bytes.Buffer
	ctx := *m.ctx
	ctx.Console = console.New(strings.NewReader(value+"\n"), &buf,
		console.WithoutPrompts(),
		console.WithColor(false),
	)

	if err := cmd.Run(&ctx); err != nil {
		if errors.Is(err, io.EOF) {
			ctx.Logger().Debug("command ran out of input", zap.String("op", cmd.Name()))
		} else {
			buf.WriteString(fileops.Describe(err) + "\n")
		}
	}
	m.setOutput(strings.TrimRight(buf.String(), "\n"))
}

func (m *Model) setOutput(s string) {
	m.text = s
	m.output.SetContent(s)
	m.output.GotoTop()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("fileops"))
	b.WriteString("\n")
	dir := "(none)"
	if m.ctx.Session.Selected() {
		dir = m.ctx.Session.Dir()
	}
	b.WriteString(m.styles.muted.Render("Directory: " + dir))
	b.WriteString("\n\n")

	for i, it := range m.items {
		line := it.key + " - " + it.label
		if i == m.cursor {
			b.WriteString(m.styles.cursor.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if cmd := m.items[m.cursor].cmd; cmd != nil && m.state == stateMenu {
		b.WriteString(m.styles.muted.Render(cmd.Help()))
		b.WriteString("\n\n")
	}

	if m.state == stateInput {
		b.WriteString(m.active.Prompt())
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	if m.text != "" {
		b.WriteString(m.output.View())
		b.WriteString("\n")
	}

	hint := "up/down move  enter select  0-5 jump  pgup/pgdown scroll  q quit"
	if m.state == stateInput {
		hint = "enter run  esc back  ctrl+c quit"
	}
	b.WriteString(m.styles.muted.Render(hint))
	return b.String()
}
