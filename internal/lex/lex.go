// Package lex splits a partially typed command line the way a POSIX shell would.
package lex

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/shlex"
)

// ErrInvalidLine is returned for lines shlex cannot split, such as ones with an unclosed quote
var ErrInvalidLine = errors.New("invalid command line")

// Split splits s into words honoring quotes and backslash escapes
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLine, err)
	}

	return args, nil
}

// SplitLine splits a line typed up to the cursor into the completed words and the word being
// typed. current is empty when the line is empty or ends in unescaped whitespace.
func SplitLine(line string) (words []string, current string, err error) {
	words, err = Split(line)
	if err != nil {
		return nil, "", err
	}
	if len(words) == 0 || endsWithSeparator(line) {
		return words, "", nil
	}

	return words[:len(words)-1], words[len(words)-1], nil
}

func endsWithSeparator(line string) bool {
	trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
	if trimmed == line {
		return false
	}

	// an odd run of backslashes escapes the first trailing blank
	backslashes := len(trimmed) - len(strings.TrimRight(trimmed, `\`))
	return backslashes%2 == 0 || len(line)-len(trimmed) > 1
}
