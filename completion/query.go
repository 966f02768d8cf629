package completion

import (
	"strings"

	"github.com/napalu/complgen/internal/lex"
	"github.com/napalu/complgen/internal/log"
	"github.com/napalu/complgen/resolve"
	"github.com/napalu/complgen/spec"
)

// Candidates answers a completion request for line, the command line typed up to the cursor,
// the same way the bash script does: the first word names the program, any later word naming
// a subcommand or alias of the current command descends into it, and after an option taking a
// value its possible values are offered. Otherwise the bash words of the reached command are
// offered, without positional placeholders. Only candidates starting with the word being
// typed are returned.
func Candidates(root *spec.Command, line string, opts ...Option) ([]string, error) {
	g := NewBashGenerator(opts...)
	_, r, err := g.units(root)
	if err != nil {
		return nil, err
	}

	words, current, err := lex.SplitLine(line)
	if err != nil {
		return nil, err
	}

	cmd := root
	var prev string
	for i, w := range words {
		if i > 0 {
			if next := cmd.FindSubcommand(w); next != nil {
				cmd = next
			}
		}
		prev = w
	}
	g.debug("resolved completion request", log.BinNameKey, cmd.BinName, "current", current)

	if values, ok := valuesAfter(cmd, prev); ok {
		return withPrefix(values, current), nil
	}

	all, err := g.Words(r, cmd)
	if err != nil {
		return nil, err
	}
	candidates := make([]string, 0, len(all))
	for _, w := range all {
		if strings.HasPrefix(w, "<") {
			continue
		}
		candidates = append(candidates, w)
	}

	return withPrefix(candidates, current), nil
}

// valuesAfter reports the possible values of the option prev names in cmd
func valuesAfter(cmd *spec.Command, prev string) ([]string, bool) {
	for _, arg := range resolve.Classify(cmd.Args).Options {
		shorts, longs := resolve.SwitchTokens(arg)
		for _, tok := range append(shorts, longs...) {
			if tok == prev {
				return arg.PossibleValues, true
			}
		}
	}

	return nil, false
}

func withPrefix(words []string, prefix string) []string {
	out := []string{}
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			out = append(out, w)
		}
	}

	return out
}
