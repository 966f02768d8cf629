package spec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toolYAML = `
name: tool
about: Tests completions
authors:
  - "Alice Person <alice@person.com>"
args:
  - name: debug
    short: d
    help: Make program output debug messages
  - name: output
    short: o
    long: out
    takes_value: true
    possible_values: [json, text]
  - name: file
    index: 1
subcommands:
  - name: foo
    about: does foo
    aliases:
      - f
      - name: fo
        hidden: true
    args:
      - name: bar
        short: b
        long: barr
`

func TestLoadYAML(t *testing.T) {
	root, err := LoadYAML(strings.NewReader(toolYAML))
	require.NoError(t, err)

	assert.Equal(t, "tool", root.BinName)
	require.Len(t, root.Args, 3)
	assert.Equal(t, "out", root.Args[1].Long)
	assert.True(t, root.Args[1].TakesValue)
	assert.Equal(t, []string{"json", "text"}, root.Args[1].PossibleValues)
	assert.Equal(t, 1, root.Args[2].Index)

	require.Len(t, root.Subcommands, 1)
	foo := root.Subcommands[0]
	assert.Equal(t, "tool foo", foo.BinName)
	assert.Equal(t, []Alias{{Name: "f"}, {Name: "fo", Hidden: true}}, foo.Aliases)
	assert.Equal(t, "barr", foo.Args[0].Long)
}

func TestLoadYAML_BinName(t *testing.T) {
	root, err := LoadYAML(strings.NewReader("name: tool\nbin_name: my-tool\nsubcommands:\n  - name: x\n"))
	require.NoError(t, err)
	assert.Equal(t, "my-tool x", root.Subcommands[0].BinName)
}

func TestLoadYAML_Errors(t *testing.T) {
	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadYAML(strings.NewReader("name: tool\nbogus: 1\n"))
		assert.Error(t, err)
	})

	t.Run("invalid tree", func(t *testing.T) {
		doc := "name: tool\nargs:\n  - name: a\n    short: a\n    conflicts_with: [b]\n"
		_, err := LoadYAML(strings.NewReader(doc))
		assert.ErrorIs(t, err, ErrArgumentNotFound)
	})
}
