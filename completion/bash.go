package completion

import (
	"fmt"
	"strings"

	"github.com/napalu/complgen/internal/log"
	"github.com/napalu/complgen/resolve"
	"github.com/napalu/complgen/spec"
)

// BashGenerator renders one function per completion path and a dispatcher which walks
// COMP_WORDS to pick the function matching the subcommands typed so far
type BashGenerator struct {
	generatorBase
}

func NewBashGenerator(opts ...Option) *BashGenerator {
	return &BashGenerator{generatorBase: newGeneratorBase(Bash, opts...)}
}

func (g *BashGenerator) Generate(root *spec.Command) (string, error) {
	units, r, err := g.units(root)
	if err != nil {
		return "", err
	}

	if err := checkFunctionNames(units); err != nil {
		return "", err
	}

	binName := root.BinName
	dispatch := functionName(resolve.PathOf(binName)) + "_dispatch"

	var script strings.Builder
	script.WriteString(fmt.Sprintf(`%s() {
    local i cmd fn
    COMPREPLY=()
    cmd=""
    fn=""

    for i in "${COMP_WORDS[@]:0:COMP_CWORD}"; do
        case "${cmd},${i}" in
            ",$1")
                cmd="%s"
                fn="%s"
                ;;`, dispatch, escapeDoubleQuoted(units[0].Path), functionName(units[0].Path)))

	for _, unit := range units {
		children, err := r.DirectChildren(unit.Command)
		if err != nil {
			return "", err
		}
		for _, child := range children {
			script.WriteString(fmt.Sprintf(`
            "%s,%s")
                cmd="%s"
                fn="%s"
                ;;`, escapeDoubleQuoted(unit.Path), escapeDoubleQuoted(child.Name), escapeDoubleQuoted(child.Path()), functionName(child.Path())))
		}
	}

	script.WriteString(`
            *)
                ;;
        esac
    done

    if [[ -n "${fn}" ]] && declare -F "${fn}" >/dev/null; then
        "${fn}"
    fi
}
`)

	for _, unit := range units {
		fn, err := g.unitFunction(r, unit)
		if err != nil {
			return "", err
		}
		script.WriteString("\n")
		script.WriteString(fn)
	}

	script.WriteString(fmt.Sprintf(`
complete -F %s -o bashdefault -o default %s
`, dispatch, binName))

	g.debug("generated bash completion", log.BinNameKey, binName, "units", len(units))

	return script.String(), nil
}

// Words returns the candidates offered at a completion path in the order they are emitted:
// short switches, long switches and long aliases, positional placeholders, then subcommand
// names and aliases
func (g *BashGenerator) Words(r *resolve.Resolver, cmd *spec.Command) ([]string, error) {
	var shorts, longs []string
	for _, arg := range resolve.Switches(cmd.Args) {
		s, l := resolve.SwitchTokens(arg)
		shorts = append(shorts, s...)
		longs = append(longs, l...)
	}

	words := append(shorts, longs...)
	for _, arg := range resolve.Classify(cmd.Args).Positionals {
		words = append(words, "<"+arg.Name+">")
	}

	children, err := r.DirectChildren(cmd)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		words = append(words, child.Name)
	}

	return words, nil
}

func (g *BashGenerator) unitFunction(r *resolve.Resolver, unit resolve.Unit) (string, error) {
	words, err := g.Words(r, unit.Command)
	if err != nil {
		return "", err
	}
	for i, w := range words {
		words[i] = escapeDoubleQuoted(w)
	}
	level := strings.Count(unit.Path, resolve.PathSeparator) + 1

	var fn strings.Builder
	fn.WriteString(fmt.Sprintf(`%s() {
    local cur prev opts
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"

    if [[ ${cur} == -* || ${COMP_CWORD} -eq %d ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi

    case "${prev}" in`, functionName(unit.Path), strings.Join(words, " "), level))

	for _, arg := range resolve.Classify(unit.Command.Args).Options {
		shorts, longs := resolve.SwitchTokens(arg)
		fn.WriteString(fmt.Sprintf(`
        %s)
            %s
            return 0
            ;;`, strings.Join(append(shorts, longs...), "|"), bashValueCompletion(arg)))
	}

	fn.WriteString(`
        *)
            COMPREPLY=()
            ;;
    esac

    COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
    return 0
}
`)

	return fn.String(), nil
}

func bashValueCompletion(arg *spec.Argument) string {
	if len(arg.PossibleValues) == 0 {
		return `COMPREPLY=( $(compgen -f -- "${cur}") )`
	}

	values := make([]string, len(arg.PossibleValues))
	for i, v := range arg.PossibleValues {
		values[i] = escapeDoubleQuoted(v)
	}

	return fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(values, " "))
}
