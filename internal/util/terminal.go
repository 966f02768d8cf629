package util

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal or its size cannot be read
const DefaultWidth = 80

// Terminal abstracts the terminal queries used for text rendering
type Terminal interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

// DefaultTerminal implements Terminal with golang.org/x/term
type DefaultTerminal struct{}

func (DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func (DefaultTerminal) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// Width returns the column count of the terminal attached to fd, or DefaultWidth
// when fd is not a terminal
func Width(t Terminal, fd int) int {
	if t == nil || !t.IsTerminal(fd) {
		return DefaultWidth
	}

	w, _, err := t.GetSize(fd)
	if err != nil || w <= 0 {
		return DefaultWidth
	}

	return w
}

// StdoutWidth returns Width for os.Stdout
func StdoutWidth() int {
	return Width(DefaultTerminal{}, int(os.Stdout.Fd()))
}

// IsStdoutTerminal reports whether os.Stdout is attached to a terminal
func IsStdoutTerminal() bool {
	return DefaultTerminal{}.IsTerminal(int(os.Stdout.Fd()))
}
