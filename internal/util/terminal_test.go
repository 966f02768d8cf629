package util

import (
	"errors"
	"testing"
)

type mockTerminal struct {
	isTerminal bool
	width      int
	err        error
}

func (m *mockTerminal) IsTerminal(fd int) bool {
	return m.isTerminal
}

func (m *mockTerminal) GetSize(fd int) (int, int, error) {
	return m.width, 24, m.err
}

func TestWidth(t *testing.T) {
	tests := []struct {
		name string
		term Terminal
		want int
	}{
		{name: "nil terminal", term: nil, want: DefaultWidth},
		{name: "not a terminal", term: &mockTerminal{isTerminal: false, width: 120}, want: DefaultWidth},
		{name: "terminal width", term: &mockTerminal{isTerminal: true, width: 120}, want: 120},
		{name: "size error", term: &mockTerminal{isTerminal: true, err: errors.New("no tty")}, want: DefaultWidth},
		{name: "zero width", term: &mockTerminal{isTerminal: true, width: 0}, want: DefaultWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Width(tt.term, 1); got != tt.want {
				t.Errorf("Width() = %d, want %d", got, tt.want)
			}
		})
	}
}
