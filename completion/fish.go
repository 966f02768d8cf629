package completion

import (
	"fmt"
	"strings"

	"github.com/napalu/complgen/internal/log"
	"github.com/napalu/complgen/resolve"
	"github.com/napalu/complgen/spec"
)

// FishGenerator renders one complete directive per argument and per subcommand name,
// each guarded by a condition on the subcommands seen so far
type FishGenerator struct {
	generatorBase
}

func NewFishGenerator(opts ...Option) *FishGenerator {
	return &FishGenerator{generatorBase: newGeneratorBase(Fish, opts...)}
}

func (g *FishGenerator) Generate(root *spec.Command) (string, error) {
	units, r, err := g.units(root)
	if err != nil {
		return "", err
	}

	var script strings.Builder
	if err := g.writeCommand(&script, r, root.BinName, root, true); err != nil {
		return "", err
	}

	g.debug("generated fish completion", log.BinNameKey, root.BinName, "units", len(units))

	return script.String(), nil
}

func (g *FishGenerator) writeCommand(script *strings.Builder, r *resolve.Resolver, binName string, cmd *spec.Command, isRoot bool) error {
	children, err := r.DirectChildren(cmd)
	if err != nil {
		return err
	}
	condition := fishCondition(cmd, children, isRoot)
	prefix := fmt.Sprintf("complete -c %s -n '%s'", binName, condition)

	for _, arg := range resolve.Switches(cmd.Args) {
		script.WriteString(prefix + fishSwitch(arg) + "\n")
	}
	for _, arg := range resolve.Classify(cmd.Args).Positionals {
		if len(arg.PossibleValues) == 0 {
			continue
		}
		script.WriteString(fmt.Sprintf("%s -f -a \"%s\" -d '%s'\n", prefix, fishValues(arg.PossibleValues), escapeFish(arg.HelpText())))
	}
	for _, child := range children {
		script.WriteString(fmt.Sprintf("%s -f -a \"%s\" -d '%s'\n", prefix, escapeFishDoubleQuoted(child.Name), escapeFish(child.Command.About)))
	}

	for _, sc := range cmd.Subcommands {
		if err := g.writeCommand(script, r, binName, sc, false); err != nil {
			return err
		}
	}

	return nil
}

// fishCondition selects the command line state in which cmd's candidates apply: no subcommand
// yet for the root, otherwise cmd (or an alias) seen and none of its own children
func fishCondition(cmd *spec.Command, children []resolve.Child, isRoot bool) string {
	if isRoot {
		return "__fish_use_subcommand"
	}

	names := append([]string{cmd.Name}, cmd.AliasNames()...)
	condition := "__fish_seen_subcommand_from " + fishWords(names)
	if len(children) == 0 {
		return condition
	}

	childNames := make([]string, 0, len(children))
	for _, child := range children {
		childNames = append(childNames, child.Name)
	}

	return condition + "; and not __fish_seen_subcommand_from " + fishWords(childNames)
}

func fishSwitch(arg *spec.Argument) string {
	var b strings.Builder
	if arg.Short != "" {
		b.WriteString(" -s " + escapeFish(arg.Short))
	}
	if arg.Long != "" {
		b.WriteString(" -l " + escapeFish(arg.Long))
	}
	for _, alias := range arg.Aliases {
		b.WriteString(" -l " + escapeFish(alias))
	}
	if help := arg.HelpText(); help != "" {
		b.WriteString(fmt.Sprintf(" -d '%s'", escapeFish(help)))
	}
	if resolve.KindOf(arg) == resolve.KindOption {
		b.WriteString(" -r")
		if len(arg.PossibleValues) > 0 {
			b.WriteString(fmt.Sprintf(" -f -a \"%s\"", fishValues(arg.PossibleValues)))
		}
	}

	return b.String()
}

func fishValues(values []string) string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = escapeFishDoubleQuoted(v)
	}

	return strings.Join(escaped, " ")
}

// fishWords escapes names for use inside the single-quoted condition
func fishWords(names []string) string {
	escaped := make([]string, len(names))
	for i, n := range names {
		escaped[i] = escapeFish(n)
	}

	return strings.Join(escaped, " ")
}
