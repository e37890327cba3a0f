package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStdConsole_ReadLineTrimsNewline(t *testing.T) {
	c := NewStdConsole(strings.NewReader("hello\nworld\n"), &bytes.Buffer{})

	line, err := c.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "hello", line)

	line, err = c.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "world", line)
}

func TestStdConsole_ReadLineHandlesMissingTrailingNewline(t *testing.T) {
	c := NewStdConsole(strings.NewReader("last"), &bytes.Buffer{})

	line, err := c.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "last", line)
}

func TestStdConsole_ReadLineOnExhaustedInputIsConsoleIOError(t *testing.T) {
	c := NewStdConsole(strings.NewReader(""), &bytes.Buffer{})

	_, err := c.ReadLine()
	require.ErrorIs(t, err, ErrConsoleIO)
}

func TestStdConsole_WriteLineAppendsNewline(t *testing.T) {
	var out bytes.Buffer
	c := NewStdConsole(strings.NewReader(""), &out)

	require.NoError(t, c.WriteLine("5"))
	require.Equal(t, "5\n", out.String())
}

func TestStdConsole_NotInteractiveForPipes(t *testing.T) {
	c := NewStdConsole(strings.NewReader(""), &bytes.Buffer{})
	require.False(t, c.IsInteractive())
}
