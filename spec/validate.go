package spec

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/napalu/complgen/types/orderedmap"
	"github.com/napalu/complgen/types/queue"
)

type visit struct {
	cmd    *Command
	parent *Command
}

// Validate checks the invariants generation relies on and returns every violation found,
// joined with errors.Join:
//   - every command has a bin name, and children extend their parent's bin name by their own name
//   - arguments were built without config errors
//   - argument names are unique within a command, shorts are single characters and indexes positive
//   - command names are non-empty and contain no whitespace
//   - every conflict refers to an argument of the same command
//   - no alias equals the name or alias of a sibling command
func Validate(root *Command) error {
	if root == nil {
		return ErrNilCommand
	}

	var errs []error
	pending := queue.New[visit]()
	pending.Enqueue(visit{cmd: root})
	for pending.Len() > 0 {
		v, _ := pending.Dequeue()
		errs = append(errs, validateCommand(v.cmd, v.parent)...)
		for _, sc := range v.cmd.Subcommands {
			pending.Enqueue(visit{cmd: sc, parent: v.cmd})
		}
	}

	return errors.Join(errs...)
}

func validateCommand(cmd, parent *Command) []error {
	var errs []error
	if cmd.Name == "" || strings.IndexFunc(cmd.Name, unicode.IsSpace) >= 0 {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidCommandName, cmd.Name))
	}
	switch {
	case cmd.BinName == "":
		errs = append(errs, fmt.Errorf(FmtErrorWithString, ErrMissingBinName, cmd.Name))
	case parent != nil && parent.BinName != "" && cmd.BinName != parent.BinName+" "+cmd.Name:
		errs = append(errs, fmt.Errorf("%w: %q is not %q", ErrBinNameMismatch, cmd.BinName, parent.BinName+" "+cmd.Name))
	}

	args := orderedmap.NewOrderedMap[string, *Argument]()
	for _, a := range cmd.Args {
		if a.configErr != nil {
			errs = append(errs, fmt.Errorf("%w (argument %s in %s)", a.configErr, a.Name, cmd.BinName))
		}
		if !args.SetIfAbsent(a.Name, a) {
			errs = append(errs, fmt.Errorf("%w: %s in %s", ErrDuplicateArgument, a.Name, cmd.BinName))
		}
		if a.Short != "" && utf8.RuneCountInString(a.Short) != 1 {
			errs = append(errs, fmt.Errorf("%w: %q on %s", ErrInvalidShort, a.Short, a.Name))
		}
		if a.Index < 0 {
			errs = append(errs, fmt.Errorf("%w: %d on %s", ErrInvalidIndex, a.Index, a.Name))
		}
	}
	for _, a := range cmd.Args {
		for _, name := range a.Blacklist {
			if !args.Has(name) {
				errs = append(errs, fmt.Errorf("%w: %s (conflict of %s in %s)", ErrArgumentNotFound, name, a.Name, cmd.BinName))
			}
		}
	}

	names := orderedmap.NewOrderedMap[string, string]()
	for _, sc := range cmd.Subcommands {
		names.SetIfAbsent(sc.Name, sc.Name)
	}
	for _, sc := range cmd.Subcommands {
		for _, alias := range sc.Aliases {
			if owner, ok := names.Get(alias.Name); ok && owner != sc.Name {
				errs = append(errs, fmt.Errorf("%w: alias %q of %q in %s", ErrAliasCollision, alias.Name, sc.Name, cmd.BinName))
				continue
			}
			names.Set(alias.Name, sc.Name)
		}
	}

	return errs
}
