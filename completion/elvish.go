package completion

import (
	"fmt"
	"strings"

	"github.com/napalu/complgen/internal/log"
	"github.com/napalu/complgen/resolve"
	"github.com/napalu/complgen/spec"
)

// ElvishGenerator renders an arg-completer holding a map from ';'-joined subcommand path
// to a block emitting that path's candidates
type ElvishGenerator struct {
	generatorBase
}

func NewElvishGenerator(opts ...Option) *ElvishGenerator {
	return &ElvishGenerator{generatorBase: newGeneratorBase(Elvish, opts...)}
}

func (g *ElvishGenerator) Generate(root *spec.Command) (string, error) {
	units, r, err := g.typedUnits(root)
	if err != nil {
		return "", err
	}

	binName := root.BinName
	var script strings.Builder
	script.WriteString(fmt.Sprintf(`use builtin;
use str;

set edit:completion:arg-completer[%[1]s] = {|@words|
    fn spaces {|n|
        builtin:repeat $n ' ' | str:join ''
    }
    fn cand {|text desc|
        edit:complex-candidate $text &display=$text' '(spaces (- 14 (wcswidth $text)))$desc
    }
    var command = '%[1]s'
    for word $words[1..-1] {
        if (str:has-prefix $word '-') {
            break
        }
        set command = $command';'$word
    }
    var completions = [`, escapeSingleQuoted(binName)))

	for _, unit := range units {
		key := strings.ReplaceAll(unit.Path, resolve.PathSeparator, ";")
		script.WriteString(fmt.Sprintf(`
        &'%s'= {`, escapeSingleQuoted(key)))

		for _, arg := range resolve.Switches(unit.Command.Args) {
			shorts, longs := resolve.SwitchTokens(arg)
			for _, tok := range append(shorts, longs...) {
				script.WriteString(elvishCand(tok, arg.HelpText()))
			}
		}
		for _, arg := range resolve.Classify(unit.Command.Args).Positionals {
			for _, v := range arg.PossibleValues {
				script.WriteString(elvishCand(v, arg.HelpText()))
			}
		}

		children, err := r.DirectChildren(unit.Command)
		if err != nil {
			return "", err
		}
		for _, child := range children {
			script.WriteString(elvishCand(child.Name, child.Command.About))
		}

		script.WriteString(`
        }`)
	}

	script.WriteString(`
    ]
    if (has-key $completions $command) {
        $completions[$command]
    }
}
`)

	g.debug("generated elvish completion", log.BinNameKey, binName, "units", len(units))

	return script.String(), nil
}

func elvishCand(text, desc string) string {
	return fmt.Sprintf(`
            cand '%s' '%s'`, escapeSingleQuoted(text), escapeSingleQuoted(oneLine(desc)))
}
