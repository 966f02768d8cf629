package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommand(t *testing.T) {
	foo := NewCommand("foo", WithAbout("does foo"), WithAlias("f"), WithHiddenAlias("fo"))
	cmd := NewCommand("tool",
		WithAbout("a tool"),
		WithLongAbout("a longer description"),
		WithVersion("1.0.0"),
		WithAuthor("Alice\nBob"),
		WithArgs(NewArg("debug", WithShort("d"))),
		WithSubcommands(foo),
		SetHidden(false),
	)

	assert.Equal(t, "tool", cmd.Name)
	assert.Equal(t, "a tool", cmd.About)
	assert.Equal(t, []string{"Alice\nBob"}, cmd.Authors)
	assert.True(t, cmd.HasSubcommands())
	require.Len(t, cmd.Args, 1)
	assert.Equal(t, "debug", cmd.FindArg("debug").Name)
	assert.Nil(t, cmd.FindArg("missing"))

	assert.Same(t, foo, cmd.FindSubcommand("foo"))
	assert.Same(t, foo, cmd.FindSubcommand("f"))
	assert.Same(t, foo, cmd.FindSubcommand("fo"))
	assert.Nil(t, cmd.FindSubcommand("bar"))

	assert.Equal(t, []string{"f"}, foo.VisibleAliases())
	assert.Equal(t, []string{"f", "fo"}, foo.AliasNames())
}

func TestCommand_Set(t *testing.T) {
	cmd := &Command{Name: "tool"}
	cmd.Set(WithBinName("tool"), WithAbout("about"))

	assert.Equal(t, "tool", cmd.BinName)
	assert.Equal(t, "about", cmd.About)
	assert.Equal(t, []string{"tool"}, cmd.Path())
}

func TestCommand_Visit(t *testing.T) {
	root := NewCommand("tool", WithSubcommands(
		NewCommand("a", WithSubcommands(NewCommand("a1"))),
		NewCommand("b"),
	))

	var seen []string
	root.Visit(func(cmd *Command, level int) bool {
		seen = append(seen, cmd.Name)
		return cmd.Name != "a"
	}, 0)

	assert.Equal(t, []string{"tool", "a", "b"}, seen)
}
