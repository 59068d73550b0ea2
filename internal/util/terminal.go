package util

import (
	"os"

	"golang.org/x/term"
)

// DefaultTerminalWidth is used when output is not attached to a terminal
const DefaultTerminalWidth = 80

// Terminal abstracts the terminal queries needed for help output
type Terminal interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

type systemTerminal struct{}

func (systemTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func (systemTerminal) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// SystemTerminal queries the real terminal through golang.org/x/term
var SystemTerminal Terminal = systemTerminal{}

// TerminalWidth returns the width of the terminal attached to f, or DefaultTerminalWidth
func TerminalWidth(t Terminal, f *os.File) int {
	if f == nil {
		return DefaultTerminalWidth
	}
	fd := int(f.Fd())
	if !t.IsTerminal(fd) {
		return DefaultTerminalWidth
	}
	width, _, err := t.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return width
}
