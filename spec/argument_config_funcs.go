package spec

import (
	"fmt"
	"unicode/utf8"
)

// ConfigureArgumentFunc is used when defining Argument values
type ConfigureArgumentFunc func(argument *Argument, err *error)

// WithShort sets the single-character short form of a flag or option (used as -x)
func WithShort(short string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		if utf8.RuneCountInString(short) != 1 {
			*err = fmt.Errorf(FmtErrorWithString, ErrInvalidShort, short)
			return
		}
		argument.Short = short
	}
}

// WithLong sets the long form of a flag or option (used as --long)
func WithLong(long string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Long = long
	}
}

// SetTakesValue when true, the argument is an option which expects a value. Otherwise it is a boolean flag.
func SetTakesValue(takesValue bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.TakesValue = takesValue
	}
}

// WithIndex marks the argument as positional. Indexes are 1-based.
func WithIndex(index int) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		if index < 1 {
			*err = fmt.Errorf("%w: %d", ErrInvalidIndex, index)
			return
		}
		argument.Index = index
	}
}

// WithHelp the short help text shown next to completions
func WithHelp(help string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Help = help
	}
}

// WithLongHelp the long help text; takes precedence over WithHelp in manuals
func WithLongHelp(help string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.LongHelp = help
	}
}

// WithArgAliases adds alternate long names (completed as --alias)
func WithArgAliases(aliases ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Aliases = append(argument.Aliases, aliases...)
	}
}

// WithConflicts declares arguments (by name) which cannot be used together with this one
func WithConflicts(names ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Blacklist = append(argument.Blacklist, names...)
	}
}

// WithHelpHeading groups the argument under a custom heading. Such arguments are not
// completed as flags, options or positionals.
func WithHelpHeading(heading string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.HelpHeading = heading
	}
}

// WithPossibleValues sets the static list of values offered when completing the argument's value
func WithPossibleValues(values ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.PossibleValues = append(argument.PossibleValues, values...)
	}
}

// SetRequired when true, the argument must be supplied
func SetRequired(required bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Required = required
	}
}

// SetMultiple when true, the argument may be repeated
func SetMultiple(multiple bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Multiple = multiple
	}
}

// SetArgHidden when true, the argument is neither completed nor documented
func SetArgHidden(hidden bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Hidden = hidden
	}
}
