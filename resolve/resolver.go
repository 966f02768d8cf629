// Package resolve derives the views every completion emitter needs from a spec.Command tree:
// argument classification, qualified names, completion paths and conflict tokens.
// A Resolver never mutates the tree it is given and caches nothing between calls.
package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/napalu/complgen/internal/log"
	"github.com/napalu/complgen/spec"
)

// PathSeparator joins the segments of a completion path
const PathSeparator = "__"

// Resolver computes derived views of a command tree. The zero value is not usable, call New.
type Resolver struct {
	logger *slog.Logger
}

// Option configures a Resolver
type Option func(*Resolver)

// WithLogger sets the logger used to trace traversal decisions
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New returns a Resolver. Without WithLogger nothing is logged.
func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = log.WithComponent(log.OrDiscard(r.logger), "resolve")

	return r
}

func (r *Resolver) trace(msg string, args ...any) {
	r.logger.Log(context.Background(), log.LevelTrace, msg, args...)
}

// PathOf turns a space-delimited bin name into a completion path
func PathOf(binName string) string {
	return strings.ReplaceAll(binName, " ", PathSeparator)
}

// AliasBinName replaces the final segment of binName with alias
func AliasBinName(binName, alias string) string {
	idx := strings.LastIndexByte(binName, ' ')
	if idx < 0 {
		return alias
	}

	return binName[:idx+1] + alias
}

func requireBinName(cmd *spec.Command) error {
	if cmd == nil {
		return spec.ErrNilCommand
	}
	if cmd.BinName == "" {
		return fmt.Errorf(spec.FmtErrorWithString, spec.ErrMissingBinName, cmd.Name)
	}

	return nil
}

// FindArg returns the argument of cmd called name
func (r *Resolver) FindArg(cmd *spec.Command, name string) (*spec.Argument, error) {
	if arg := cmd.FindArg(name); arg != nil {
		return arg, nil
	}

	return nil, fmt.Errorf("%w: %s in %s", spec.ErrArgumentNotFound, name, cmd.BinName)
}

// Lookup resolves a completion path, whose segments may be aliases, to its command. Paths
// through names containing PathSeparator are ambiguous here; Units carries their commands.
func (r *Resolver) Lookup(root *spec.Command, path string) (*spec.Command, error) {
	if err := requireBinName(root); err != nil {
		return nil, err
	}

	rootPath := PathOf(root.BinName)
	if path == rootPath {
		return root, nil
	}
	if !strings.HasPrefix(path, rootPath+PathSeparator) {
		return nil, fmt.Errorf(spec.FmtErrorWithString, spec.ErrSubcommandNotFound, path)
	}

	cmd := root
	for _, segment := range strings.Split(strings.TrimPrefix(path, rootPath+PathSeparator), PathSeparator) {
		next := cmd.FindSubcommand(segment)
		if next == nil {
			return nil, fmt.Errorf("%w: %s (in %s)", spec.ErrSubcommandNotFound, segment, path)
		}
		cmd = next
	}

	return cmd, nil
}
