package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{`tool foo --out x`, []string{"tool", "foo", "--out", "x"}},
		{`tool "with space" 'single'`, []string{"tool", "with space", "single"}},
		{`tool a\ b`, []string{"tool", "a b"}},
		{``, nil},
	}

	for _, tt := range tests {
		got, err := Split(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := Split(`tool "unclosed`)
	assert.ErrorIs(t, err, ErrInvalidLine)
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		line    string
		words   []string
		current string
	}{
		{"", nil, ""},
		{"tool", []string{}, "tool"},
		{"tool ", []string{"tool"}, ""},
		{"tool fo", []string{"tool"}, "fo"},
		{"tool foo --o", []string{"tool", "foo"}, "--o"},
		{`tool a\ `, []string{"tool"}, "a "},
		{`tool a\\ `, []string{"tool", `a\`}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			words, current, err := SplitLine(tt.line)
			require.NoError(t, err)
			if len(tt.words) == 0 {
				assert.Empty(t, words)
			} else {
				assert.Equal(t, tt.words, words)
			}
			assert.Equal(t, tt.current, current)
		})
	}
}
