// Package cobraspec converts a cobra command tree into a spec.Command tree with bin names
// assigned, ready for completion and manual generation.
package cobraspec

import (
	"strings"

	"github.com/napalu/complgen/spec"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// annotation cobra sets on flags grouped with MarkFlagsMutuallyExclusive
const mutuallyExclusiveAnnotation = "cobra_annotation_mutually_exclusive"

// FromCobra converts cmd and its available subcommands. binName names the root in the
// generated scripts; cmd.Name() is used when it is empty. Local and persistent flags of a
// command become its arguments, inherited persistent flags are attached to every descendant,
// ValidArgs become a positional with possible values. Hidden flags and commands, and cobra's
// help and completion helpers, are skipped.
func FromCobra(cmd *cobra.Command, binName string) (*spec.Command, error) {
	if binName == "" {
		binName = cmd.Name()
	}

	root := convert(cmd)
	spec.BuildBinNames(root, binName)
	if err := spec.Validate(root); err != nil {
		return nil, err
	}

	return root, nil
}

func convert(cmd *cobra.Command) *spec.Command {
	sc := spec.NewCommand(cmd.Name(),
		spec.WithAbout(cmd.Short),
		spec.WithLongAbout(cmd.Long),
		spec.WithVersion(cmd.Version),
	)
	for _, alias := range cmd.Aliases {
		sc.Set(spec.WithAlias(alias))
	}

	addFlag := func(f *pflag.Flag) {
		if f.Hidden || f.Name == "help" || sc.FindArg(f.Name) != nil {
			return
		}
		sc.Args = append(sc.Args, convertFlag(f))
	}
	cmd.LocalFlags().VisitAll(addFlag)
	cmd.InheritedFlags().VisitAll(addFlag)
	pruneConflicts(sc)

	if len(cmd.ValidArgs) > 0 {
		values := make([]string, 0, len(cmd.ValidArgs))
		for _, v := range cmd.ValidArgs {
			// cobra allows "value\tdescription"
			values = append(values, strings.SplitN(v, "\t", 2)[0])
		}
		sc.Args = append(sc.Args, spec.NewArg("args", spec.WithIndex(1), spec.WithPossibleValues(values...)))
	}

	for _, child := range cmd.Commands() {
		if !child.IsAvailableCommand() || child.Name() == "help" {
			continue
		}
		sc.Subcommands = append(sc.Subcommands, convert(child))
	}

	return sc
}

func convertFlag(f *pflag.Flag) *spec.Argument {
	arg := spec.NewArg(f.Name,
		spec.WithLong(f.Name),
		spec.WithHelp(f.Usage),
		// flags with a NoOptDefVal (bools, counts) may be given without a value
		spec.SetTakesValue(f.NoOptDefVal == ""),
	)
	if f.Shorthand != "" && f.ShorthandDeprecated == "" {
		arg.Short = f.Shorthand
	}
	if values, ok := f.Annotations[cobra.BashCompOneRequiredFlag]; ok && len(values) > 0 && values[0] == "true" {
		arg.Required = true
	}
	if strings.Contains(f.Value.Type(), "Slice") || strings.Contains(f.Value.Type(), "Array") || f.Value.Type() == "count" {
		arg.Multiple = true
	}
	for _, group := range f.Annotations[mutuallyExclusiveAnnotation] {
		for _, name := range strings.Split(group, " ") {
			if name != "" && name != f.Name {
				arg.Blacklist = append(arg.Blacklist, name)
			}
		}
	}

	return arg
}

// pruneConflicts drops conflicts with flags which were not converted, such as hidden ones
func pruneConflicts(cmd *spec.Command) {
	for _, arg := range cmd.Args {
		kept := arg.Blacklist[:0]
		for _, name := range arg.Blacklist {
			if cmd.FindArg(name) != nil {
				kept = append(kept, name)
			}
		}
		arg.Blacklist = kept
	}
}
