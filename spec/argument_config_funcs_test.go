package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArg(t *testing.T) {
	arg := NewArg("output",
		WithShort("o"),
		WithLong("out"),
		SetTakesValue(true),
		WithHelp("Output file"),
		WithLongHelp("Write results to the given file"),
		WithArgAliases("output"),
		WithConflicts("stdout"),
		WithPossibleValues("a.txt", "b.txt"),
		SetRequired(true),
		SetMultiple(true),
	)

	assert.Equal(t, "output", arg.Name)
	assert.Equal(t, "o", arg.Short)
	assert.Equal(t, "out", arg.Long)
	assert.True(t, arg.TakesValue)
	assert.Equal(t, "Write results to the given file", arg.HelpText())
	assert.Equal(t, []string{"output"}, arg.Aliases)
	assert.Equal(t, []string{"stdout"}, arg.Blacklist)
	assert.Equal(t, []string{"a.txt", "b.txt"}, arg.PossibleValues)
	assert.True(t, arg.Required)
	assert.True(t, arg.Multiple)
	assert.True(t, arg.HasSwitch())
	assert.Equal(t, "-o, --out <output>", arg.String())
}

func TestNewArg_KeepsFirstConfigError(t *testing.T) {
	arg := NewArg("out", WithShort("ou"), WithIndex(0), SetTakesValue(true), WithLong("out"))

	assert.ErrorIs(t, arg.ConfigErr(), ErrInvalidShort)
	assert.NotErrorIs(t, arg.ConfigErr(), ErrInvalidIndex)
	// later configs still apply
	assert.True(t, arg.TakesValue)
	assert.Equal(t, "out", arg.Long)

	assert.NoError(t, NewArg("debug", WithShort("d")).ConfigErr())
}

func TestArgument_Set(t *testing.T) {
	t.Run("invalid short", func(t *testing.T) {
		arg := &Argument{Name: "debug"}
		err := arg.Set(WithShort("dd"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidShort)
		assert.Empty(t, arg.Short)
	})

	t.Run("invalid index", func(t *testing.T) {
		arg := &Argument{Name: "file"}
		err := arg.Set(WithIndex(0))
		assert.ErrorIs(t, err, ErrInvalidIndex)
	})

	t.Run("stops at first error", func(t *testing.T) {
		arg := &Argument{Name: "file"}
		err := arg.Set(WithIndex(-1), WithHelp("never applied"))
		assert.Error(t, err)
		assert.Empty(t, arg.Help)
	})

	t.Run("valid", func(t *testing.T) {
		arg := &Argument{Name: "file"}
		require.NoError(t, arg.Set(WithIndex(1), WithHelp("input")))
		assert.Equal(t, 1, arg.Index)
		assert.Equal(t, "<file>", arg.String())
	})
}

func TestArgument_HelpText(t *testing.T) {
	assert.Equal(t, "short", NewArg("a", WithHelp("short")).HelpText())
	assert.Equal(t, "long", NewArg("a", WithHelp("short"), WithLongHelp("long")).HelpText())
	assert.Empty(t, NewArg("a").HelpText())
}
