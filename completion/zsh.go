package completion

import (
	"fmt"
	"strings"

	"github.com/napalu/complgen/internal/log"
	"github.com/napalu/complgen/resolve"
	"github.com/napalu/complgen/spec"
)

// ZshGenerator renders an _arguments block per completion path, nesting child paths in
// case $state arms, plus a _describe function per path listing its visible subcommands
type ZshGenerator struct {
	generatorBase
}

func NewZshGenerator(opts ...Option) *ZshGenerator {
	return &ZshGenerator{generatorBase: newGeneratorBase(Zsh, opts...)}
}

func (g *ZshGenerator) Generate(root *spec.Command) (string, error) {
	units, r, err := g.units(root)
	if err != nil {
		return "", err
	}

	if err := checkFunctionNames(units); err != nil {
		return "", err
	}

	binName := root.BinName
	mainFn := functionName(resolve.PathOf(binName))

	var script strings.Builder
	script.WriteString(fmt.Sprintf(`#compdef %[1]s

autoload -U is-at-least

%[2]s() {
    typeset -A opt_args
    typeset -a _arguments_options
    local ret=1

    if is-at-least 5.2; then
        _arguments_options=(-s -S -C)
    else
        _arguments_options=(-s -C)
    fi

    local context curcontext="$curcontext" state line
`, binName, mainFn))

	body, err := g.block(r, binName, units[0].Path, root, 1)
	if err != nil {
		return "", err
	}
	script.WriteString(body)
	script.WriteString(`}
`)

	for _, unit := range units {
		fn, err := g.commandsFunction(r, binName, unit)
		if err != nil {
			return "", err
		}
		script.WriteString("\n")
		script.WriteString(fn)
	}

	script.WriteString(fmt.Sprintf(`
if [ "$funcstack[1]" = "%[1]s" ]; then
    %[1]s "$@"
else
    compdef %[1]s %[2]s
fi
`, mainFn, binName))

	g.debug("generated zsh completion", log.BinNameKey, binName, "units", len(units))

	return script.String(), nil
}

// block renders the _arguments call for the command at path and, when it has children,
// the state machine descending into them
func (g *ZshGenerator) block(r *resolve.Resolver, binName, path string, cmd *spec.Command, depth int) (string, error) {
	specs, err := g.ArgumentSpecs(r, cmd)
	if err != nil {
		return "", err
	}

	indent := strings.Repeat("    ", depth)
	var b strings.Builder
	b.WriteString(indent + `_arguments "${_arguments_options[@]}" \` + "\n")
	for _, s := range specs {
		b.WriteString(indent + s + " \\\n")
	}

	children, err := r.DirectChildren(cmd)
	if err != nil {
		return "", err
	}
	if len(children) == 0 {
		b.WriteString(indent + "&& ret=0\n")
		return b.String(), nil
	}

	n := len(resolve.Classify(cmd.Args).Positionals) + 1
	b.WriteString(fmt.Sprintf("%[1]s\":: :%[2]s_commands\" \\\n%[1]s\"*::: :->%[3]s\" \\\n%[1]s&& ret=0\n",
		indent, functionName(path), stateName(path)))
	b.WriteString(fmt.Sprintf(`%[1]scase $state in
%[1]s(%[2]s)
%[1]s    words=($line[%[3]d] "${words[@]}")
%[1]s    (( CURRENT += 1 ))
%[1]s    curcontext="${curcontext%%:*:*}:%[4]s-command-$line[%[3]d]:"
%[1]s    case $line[%[3]d] in
`, indent, stateName(path), n, strings.ReplaceAll(binName, " ", "-")))

	for _, child := range children {
		nested, err := g.block(r, binName, child.Path(), child.Command, depth+2)
		if err != nil {
			return "", err
		}
		b.WriteString(fmt.Sprintf("%s        (%s)\n", indent, escapeZshValue(child.Name)))
		b.WriteString(nested)
		b.WriteString(indent + "        ;;\n")
	}
	b.WriteString(fmt.Sprintf("%[1]s    esac\n%[1]s    ;;\n%[1]sesac\n", indent))

	return b.String(), nil
}

// ArgumentSpecs returns the quoted _arguments specs of cmd: options, then flags, then
// positionals, each in declaration order. Every switch carries the exclusion list built from
// its conflicts, empty when it has none.
func (g *ZshGenerator) ArgumentSpecs(r *resolve.Resolver, cmd *spec.Command) ([]string, error) {
	p := resolve.Classify(cmd.Args)
	var specs []string

	for _, arg := range p.Options {
		conflicts, err := g.conflicts(r, cmd, arg)
		if err != nil {
			return nil, err
		}
		action := ": :_files"
		if len(arg.PossibleValues) > 0 {
			action = ": :(" + zshValues(arg.PossibleValues) + ")"
		}
		help := escapeZshHelp(arg.HelpText())
		shorts, longs := resolve.SwitchTokens(arg)
		for _, s := range shorts {
			specs = append(specs, fmt.Sprintf("'%s%s%s+[%s]%s'", conflicts, zshMultiple(arg), s, help, action))
		}
		for _, l := range longs {
			specs = append(specs, fmt.Sprintf("'%s%s%s=[%s]%s'", conflicts, zshMultiple(arg), l, help, action))
		}
	}

	for _, arg := range p.Flags {
		conflicts, err := g.conflicts(r, cmd, arg)
		if err != nil {
			return nil, err
		}
		help := escapeZshHelp(arg.HelpText())
		shorts, longs := resolve.SwitchTokens(arg)
		for _, tok := range append(shorts, longs...) {
			specs = append(specs, fmt.Sprintf("'%s%s%s[%s]'", conflicts, zshMultiple(arg), tok, help))
		}
	}

	for _, arg := range p.Positionals {
		prefix := ":"
		switch {
		case arg.Multiple:
			prefix = "*:"
		case !arg.Required:
			prefix = "::"
		}
		action := "_files"
		if len(arg.PossibleValues) > 0 {
			action = "(" + zshValues(arg.PossibleValues) + ")"
		}
		specs = append(specs, fmt.Sprintf("'%s%s -- %s:%s'", prefix, escapeZshDescribe(arg.Name), escapeZshDescribe(arg.HelpText()), action))
	}

	return specs, nil
}

func (g *ZshGenerator) conflicts(r *resolve.Resolver, cmd *spec.Command, arg *spec.Argument) (string, error) {
	tokens, err := r.ConflictTokens(cmd, arg)
	if err != nil || tokens == "" {
		return "", err
	}

	return "(" + tokens + ")", nil
}

func (g *ZshGenerator) commandsFunction(r *resolve.Resolver, binName string, unit resolve.Unit) (string, error) {
	children, err := r.DirectChildren(unit.Command)
	if err != nil {
		return "", err
	}

	name := functionName(unit.Path) + "_commands"
	var fn strings.Builder
	fn.WriteString(fmt.Sprintf(`(( $+functions[%[1]s] )) ||
%[1]s() {
    local commands; commands=(`, name))
	for _, child := range children {
		if child.Hidden {
			continue
		}
		fn.WriteString(fmt.Sprintf("\n        '%s:%s' \\", escapeZshDescribe(child.Name), escapeZshDescribe(child.Command.About)))
	}
	fn.WriteString(fmt.Sprintf(`
    )
    _describe -t commands '%s commands' commands "$@"
}
`, escapeZshDescribe(strings.ReplaceAll(unit.Command.BinName, " ", "-"))))

	return fn.String(), nil
}

// stateName is the _arguments state of path, restricted to characters needing no quoting
func stateName(path string) string {
	return strings.TrimPrefix(functionName(path), "_")
}

func zshMultiple(arg *spec.Argument) string {
	if arg.Multiple {
		return "*"
	}

	return ""
}

func zshValues(values []string) string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = escapeZshValue(v)
	}

	return strings.Join(escaped, " ")
}
