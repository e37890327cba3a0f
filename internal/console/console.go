// Package console wraps the raw user console (spec.md 6's "raw console
// collaborator") with the replay machinery that makes a crashed mid-command
// interpreter resume transparently after a restart.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrConsoleIO is the sentinel spec.md 7 calls ConsoleIOError: any failure
// reading or writing the underlying console is fatal and propagates.
var ErrConsoleIO = errors.New("console: io error")

// RawConsole is the minimal capability spec.md 6 assumes: read a line
// without its trailing newline, write a line with one appended.
type RawConsole interface {
	ReadLine() (string, error)
	WriteLine(s string) error
}

// Interactive is implemented by a console that can report whether its
// underlying input is a live terminal rather than a pipe or script. It is
// an optional capability: callers type-assert for it rather than requiring
// it of every RawConsole, since test doubles have no terminal to ask about.
type Interactive interface {
	IsInteractive() bool
}

// StdConsole is a RawConsole backed by an arbitrary reader/writer pair,
// typically os.Stdin/os.Stdout. Modeled as a capability interface so test
// doubles can inject scripted input and capture output (spec.md 9).
type StdConsole struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewStdConsole builds a StdConsole over in/out. If in is an *os.File
// connected to a terminal, IsInteractive reports true.
func NewStdConsole(in io.Reader, out io.Writer) *StdConsole {
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	return &StdConsole{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// IsInteractive reports whether the underlying input looks like a live
// terminal. Purely cosmetic (spec.md's domain-stack note): it never gates
// replay correctness, only whether help's banner gets an extra blank line.
func (c *StdConsole) IsInteractive() bool {
	return c.interactive
}

// ReadLine reads one line, without its trailing newline.
func (c *StdConsole) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("%w: %v", ErrConsoleIO, err)
	}
	line = trimNewline(line)
	if err == io.EOF && line == "" {
		return "", fmt.Errorf("%w: %v", ErrConsoleIO, io.EOF)
	}
	return line, nil
}

// WriteLine writes s followed by a newline.
func (c *StdConsole) WriteLine(s string) error {
	if _, err := fmt.Fprintln(c.out, s); err != nil {
		return fmt.Errorf("%w: %v", ErrConsoleIO, err)
	}
	return nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

var _ RawConsole = (*StdConsole)(nil)
