package manual

import (
	"strings"
	"testing"

	"github.com/napalu/complgen/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp() *spec.Command {
	root := spec.NewCommand("testapp",
		spec.WithAbout("Pointless application"),
		spec.WithLongAbout("A longer story about a pointless application"),
		spec.WithVersion("1.2.3"),
		spec.WithAuthor("Alice Person <alice@person.com>\nBob Human <bob@human.com>"),
		spec.WithArgs(
			spec.NewArg("debug", spec.WithShort("d"), spec.WithHelp("Make program output debug messages")),
			spec.NewArg("output", spec.WithShort("o"), spec.SetTakesValue(true), spec.WithHelp("Output File"),
				spec.WithLongHelp("Write the output to this file")),
			spec.NewArg("format", spec.WithLong("format"), spec.SetTakesValue(true), spec.WithPossibleValues("json", "text")),
			spec.NewArg("input", spec.WithIndex(1), spec.WithHelp("Input file"), spec.SetRequired(true)),
			spec.NewArg("extra", spec.WithShort("x"), spec.WithHelpHeading("Advanced")),
			spec.NewArg("secret", spec.WithShort("s"), spec.SetArgHidden(true)),
		),
		spec.WithSubcommands(
			spec.NewCommand("foo", spec.WithAbout("does foo"), spec.WithAlias("f"),
				spec.WithArgs(spec.NewArg("bar", spec.WithShort("b"), spec.WithLong("barr")))),
			spec.NewCommand("internal", spec.SetHidden(true)),
		),
	)
	spec.BuildBinNames(root, "testapp")

	return root
}

func TestNew(t *testing.T) {
	m, err := New(testApp())
	require.NoError(t, err)

	assert.Equal(t, "TESTAPP", m.Title)
	assert.Equal(t, DefaultSection, m.Section)
	assert.Empty(t, m.Date)
	assert.Equal(t, []string{"Pointless application", "A longer story about a pointless application"}, m.About)
	assert.Equal(t, []Author{
		{Name: "Alice Person", Email: "alice@person.com"},
		{Name: "Bob Human", Email: "bob@human.com"},
	}, m.Authors)

	require.Len(t, m.Flags, 1)
	assert.Equal(t, Flag{Short: "-d", Help: "Make program output debug messages"}, m.Flags[0])

	require.Len(t, m.Options, 2)
	assert.Equal(t, "-o", m.Options[0].Short)
	assert.Empty(t, m.Options[0].Long)
	assert.Equal(t, "Write the output to this file", m.Options[0].Help)
	assert.Equal(t, "--format", m.Options[1].Long)
	assert.Equal(t, []string{"json", "text"}, m.Options[1].PossibleValues)

	require.Len(t, m.Positionals, 1)
	assert.Equal(t, "input", m.Positionals[0].Name)

	// custom headings and hidden commands are left out
	assert.Equal(t, []Subcommand{{Name: "foo", About: "does foo", Aliases: []string{"f"}}}, m.Subcommands)
}

func TestNew_AuthorsSplitOnNewline(t *testing.T) {
	root := spec.NewCommand("tool", spec.WithAuthor("Alice\nBob"))

	m, err := New(root)
	require.NoError(t, err)
	assert.Equal(t, []Author{{Name: "Alice"}, {Name: "Bob"}}, m.Authors)
}

func TestNew_Date(t *testing.T) {
	m, err := New(testApp(), WithDate("2021-04-29"), WithSection("8"))
	require.NoError(t, err)
	assert.Equal(t, "Apr 2021", m.Date)
	assert.Equal(t, "8", m.Section)

	_, err = New(testApp(), WithDate("not a date"))
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = New(nil)
	assert.ErrorIs(t, err, spec.ErrNilCommand)
}

func TestManuals(t *testing.T) {
	manuals, err := Manuals(testApp())
	require.NoError(t, err)
	require.Len(t, manuals, 1)
	assert.Equal(t, "testapp", manuals[0].Name)
}

func TestMarkdown(t *testing.T) {
	m, err := New(testApp(), WithDate("2021-04-29"))
	require.NoError(t, err)

	md := m.Markdown()
	expected := []string{
		`% "TESTAPP" "1" "Apr 2021" "testapp 1.2.3" "User Commands"` + "\n",
		"# NAME\n**testapp** - Pointless application\n",
		"# SYNOPSIS\n**testapp** [FLAGS] [OPTIONS] *input* [SUBCOMMAND]\n",
		"# DESCRIPTION\nA longer story about a pointless application\n",
		"**-d**\n\tMake program output debug messages\n",
		"**-o**=*output*\n\tWrite the output to this file\n",
		"**--format**=*format*\n\t[possible values: json, text]\n",
		"*input*\n\tInput file\n",
		"**foo** (f)\n\tdoes foo\n",
		"# AUTHORS\nAlice Person <alice@person.com>\n\nBob Human <bob@human.com>\n",
		"# VERSION\n1.2.3\n",
	}
	for _, want := range expected {
		assert.Contains(t, md, want)
	}
	assert.NotContains(t, md, "extra")
	assert.NotContains(t, md, "internal")
	assert.Equal(t, md, m.Markdown())
}

func TestMarkdown_EscapesHelpText(t *testing.T) {
	root := spec.NewCommand("my_tool",
		spec.WithAbout("handles snake_case and `code`"),
		spec.WithArgs(spec.NewArg("out", spec.WithLong("out_dir"), spec.WithHelp("write *here*"))),
	)
	spec.BuildBinNames(root, "my_tool")
	m, err := New(root)
	require.NoError(t, err)

	md := m.Markdown()
	assert.Contains(t, md, "**my\\_tool** - handles snake\\_case and \\`code\\`\n")
	assert.Contains(t, md, "**--out\\_dir**\n\twrite \\*here\\*\n")

	roff := string(m.Roff())
	assert.NotContains(t, roff, `\fIhere`)
	assert.Contains(t, roff, "here")

	assert.Contains(t, m.Text(80, false), "write *here*")
}

func TestRoff(t *testing.T) {
	m, err := New(testApp(), WithDate("2021-04-29"))
	require.NoError(t, err)

	roff := string(m.Roff())
	assert.Contains(t, roff, ".TH")
	assert.Contains(t, roff, "TESTAPP")
	assert.Contains(t, roff, ".SH NAME")
	assert.Contains(t, roff, "Pointless application")
}

func TestText(t *testing.T) {
	m, err := New(testApp())
	require.NoError(t, err)

	text := m.Text(40, false)
	assert.True(t, strings.HasPrefix(text, "NAME\n    testapp - Pointless application\n"))
	assert.Contains(t, text, "\nFLAGS\n    -d\n        Make program output debug\n        messages\n")
	for _, line := range strings.Split(text, "\n") {
		assert.LessOrEqual(t, len(line), 40, "line too long: %q", line)
	}

	assert.Contains(t, m.Text(0, true), "OPTIONS")
}
