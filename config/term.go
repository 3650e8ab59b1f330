package config

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type TerminalIO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var DefaultTermIO = TerminalIO{
	Stdin:  os.Stdin,
	Stdout: os.Stdout,
	Stderr: os.Stderr,
}

func (t *TerminalIO) Printf(msg string, args ...interface{}) {
	fmt.Fprintf(t.Stdout, msg, args...)
}

// IsTerminal reports whether stdout is attached to a terminal. Writers other
// than *os.File, such as test buffers, never are.
func (t *TerminalIO) IsTerminal() bool {
	f, ok := t.Stdout.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// UseColor decides whether output should be colored for the given mode.
func (c Config) UseColor() bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return c.Term.IsTerminal()
}
