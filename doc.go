// Package complgen generates shell completion scripts and manual pages from a declarative
// command tree.
//
// A tree is described with package spec (directly, from YAML with spec.LoadYAML, or from a
// cobra command with cobraspec.FromCobra). Bin names are assigned before generation and every
// script is rendered in full before it is written, so a failure never leaves a partial script:
//
//	root := spec.NewCommand("tool",
//	    spec.WithArgs(spec.NewArg("debug", spec.WithShort("d"))),
//	    spec.WithSubcommands(spec.NewCommand("foo", spec.WithAlias("f"))),
//	)
//	path, err := complgen.GenerateCompletions(root, "tool", completion.Zsh, "./completions")
//
// Scripts are available for bash, zsh, fish, PowerShell and elvish.
package complgen
