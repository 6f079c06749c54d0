// Package console implements line-oriented prompts and status output for
// the interactive menu.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jmgilman/go/errors"

	"github.com/keshon/fileops/internal/config"
)

// ErrInvalidChoice is returned by ReadChoice for non-numeric or
// out-of-range input.
var ErrInvalidChoice = errors.New(errors.CodeInvalidInput, "invalid menu choice")

const invalidInputPrompt = "Invalid input. Please try again: "

// Console reads user input and writes messages.
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	maxInput    int
	hidePrompts bool
	color       bool
	styles      styles
}

// Option configures a Console.
type Option func(*Console)

// WithoutPrompts suppresses prompt labels. Used when input comes from
// somewhere other than a person at the terminal.
func WithoutPrompts() Option {
	return func(c *Console) { c.hidePrompts = true }
}

// WithColor enables or disables styled status lines.
func WithColor(enabled bool) Option {
	return func(c *Console) { c.color = enabled }
}

func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:       bufio.NewReader(in),
		out:      out,
		maxInput: config.MaxInputLength,
		color:    true,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.styles = newStyles(out, c.color)
	return c
}

// Out returns the writer messages go to.
func (c *Console) Out() io.Writer {
	return c.out
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Success prints a single-line success message.
func (c *Console) Success(msg string) {
	fmt.Fprintln(c.out, c.styles.success.Render(msg))
}

// Failure prints a single-line error message.
func (c *Console) Failure(msg string) {
	fmt.Fprintln(c.out, c.styles.failure.Render(msg))
}

// Prompt prints label without a trailing newline.
func (c *Console) Prompt(label string) {
	if c.hidePrompts || label == "" {
		return
	}
	fmt.Fprint(c.out, c.styles.prompt.Render(label))
}

// ReadLine reads one line without its line terminator. A final line with
// no terminator is returned as is; io.EOF is returned only when no input
// is left.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadChoice prompts for an integer in [min, max].
func (c *Console) ReadChoice(label string, min, max int) (int, error) {
	c.Prompt(label)
	line, err := c.ReadLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < min || n > max {
		return 0, ErrInvalidChoice
	}
	return n, nil
}

// ReadString prompts for a trimmed, non-empty value of at most the
// configured length, re-prompting until one is given.
func (c *Console) ReadString(label string) (string, error) {
	c.Prompt(label)
	for {
		line, err := c.ReadLine()
		if err != nil {
			return "", err
		}
		s := strings.TrimSpace(line)
		if s != "" && utf8.RuneCountInString(s) <= c.maxInput {
			return s, nil
		}
		c.Prompt(invalidInputPrompt)
	}
}
