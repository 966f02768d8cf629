package cobraspec

import (
	"testing"

	"github.com/napalu/complgen/completion"
	"github.com/napalu/complgen/spec"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(*cobra.Command, []string) {}

func newCobraTree(t *testing.T) *cobra.Command {
	t.Helper()

	root := &cobra.Command{Use: "tool", Short: "Tests completions", Version: "0.1.0", Run: noop}
	root.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	root.Flags().StringP("output", "o", "", "output file")
	root.Flags().Bool("json", false, "json output")
	root.Flags().Bool("yaml", false, "yaml output")
	root.Flags().String("token", "", "api token")
	require.NoError(t, root.Flags().MarkHidden("token"))
	root.MarkFlagsMutuallyExclusive("json", "yaml")
	require.NoError(t, root.MarkFlagRequired("output"))

	foo := &cobra.Command{
		Use:       "foo",
		Aliases:   []string{"f"},
		Short:     "does foo",
		ValidArgs: []string{"one\tthe first", "two"},
		Run:       noop,
	}
	foo.Flags().StringSliceP("tag", "t", nil, "tags")

	hidden := &cobra.Command{Use: "secret", Hidden: true, Run: noop}
	root.AddCommand(foo, hidden)

	return root
}

func TestFromCobra(t *testing.T) {
	root, err := FromCobra(newCobraTree(t), "")
	require.NoError(t, err)

	assert.Equal(t, "tool", root.BinName)
	assert.Equal(t, "Tests completions", root.About)
	assert.Equal(t, "0.1.0", root.Version)
	assert.Nil(t, root.FindArg("token"))
	assert.Nil(t, root.FindArg("help"))

	output := root.FindArg("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Short)
	assert.True(t, output.TakesValue)
	assert.True(t, output.Required)

	verbose := root.FindArg("verbose")
	require.NotNil(t, verbose)
	assert.False(t, verbose.TakesValue)

	assert.Equal(t, []string{"yaml"}, root.FindArg("json").Blacklist)
	assert.Equal(t, []string{"json"}, root.FindArg("yaml").Blacklist)

	require.Len(t, root.Subcommands, 1)
	foo := root.Subcommands[0]
	assert.Equal(t, "tool foo", foo.BinName)
	assert.Equal(t, []spec.Alias{{Name: "f"}}, foo.Aliases)
	assert.True(t, foo.FindArg("tag").Multiple)
	assert.NotNil(t, foo.FindArg("verbose"), "persistent flags are inherited")

	args := foo.FindArg("args")
	require.NotNil(t, args)
	assert.Equal(t, 1, args.Index)
	assert.Equal(t, []string{"one", "two"}, args.PossibleValues)
}

func TestFromCobra_BinName(t *testing.T) {
	root, err := FromCobra(newCobraTree(t), "my-tool")
	require.NoError(t, err)
	assert.Equal(t, "my-tool foo", root.Subcommands[0].BinName)
}

func TestFromCobra_Completion(t *testing.T) {
	root, err := FromCobra(newCobraTree(t), "")
	require.NoError(t, err)

	script, err := completion.Generate(root, completion.Zsh)
	require.NoError(t, err)
	assert.Contains(t, script, `'(--yaml)--json[json output]' \`)
	assert.Contains(t, script, `'::args -- :(one two)' \`)
}
