package resolve

import "github.com/napalu/complgen/spec"

// Kind is the category an argument is rendered as
type Kind int

const (
	KindFlag Kind = iota
	KindOption
	KindPositional
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindOption:
		return "option"
	case KindPositional:
		return "positional"
	case KindCustom:
		return "custom"
	}

	return "unknown"
}

// KindOf classifies a single argument. The checks run in order and the first match wins:
// an index makes it positional, a help heading makes it custom, an argument without
// short or long is positional, one taking a value is an option, anything else a flag.
func KindOf(arg *spec.Argument) Kind {
	switch {
	case arg.Index > 0:
		return KindPositional
	case arg.HelpHeading != "":
		return KindCustom
	case !arg.HasSwitch():
		return KindPositional
	case arg.TakesValue:
		return KindOption
	default:
		return KindFlag
	}
}

// Partition holds arguments split by Kind, each list in declaration order
type Partition struct {
	Flags       []*spec.Argument
	Options     []*spec.Argument
	Positionals []*spec.Argument
	Custom      []*spec.Argument
}

// Classify partitions args by KindOf. Hidden arguments are left out.
func Classify(args []*spec.Argument) Partition {
	var p Partition
	for _, a := range args {
		if a == nil || a.Hidden {
			continue
		}
		switch KindOf(a) {
		case KindFlag:
			p.Flags = append(p.Flags, a)
		case KindOption:
			p.Options = append(p.Options, a)
		case KindPositional:
			p.Positionals = append(p.Positionals, a)
		case KindCustom:
			p.Custom = append(p.Custom, a)
		}
	}

	return p
}

// Switches returns the visible flags and options of args in declaration order
func Switches(args []*spec.Argument) []*spec.Argument {
	var out []*spec.Argument
	for _, a := range args {
		if a == nil || a.Hidden {
			continue
		}
		if k := KindOf(a); k == KindFlag || k == KindOption {
			out = append(out, a)
		}
	}

	return out
}

// SwitchTokens returns the command-line tokens addressing arg: -x for the short form,
// --long for the long form followed by --alias for each argument alias
func SwitchTokens(arg *spec.Argument) (shorts, longs []string) {
	if arg.Short != "" {
		shorts = append(shorts, "-"+arg.Short)
	}
	if arg.Long != "" {
		longs = append(longs, "--"+arg.Long)
	}
	for _, alias := range arg.Aliases {
		longs = append(longs, "--"+alias)
	}

	return shorts, longs
}
