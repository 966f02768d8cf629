package completion

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/napalu/complgen/internal/log"
	"github.com/napalu/complgen/resolve"
	"github.com/napalu/complgen/spec"
)

// Generator renders the completion script of a command tree for one shell.
// The tree must have bin names assigned (see spec.BuildBinNames).
type Generator interface {
	Generate(root *spec.Command) (string, error)
}

// Option configures a Generator
type Option func(*generatorBase)

// WithLogger sets the logger used by the generator and, unless WithResolver is given, its resolver
func WithLogger(logger *slog.Logger) Option {
	return func(g *generatorBase) {
		g.logger = logger
	}
}

// WithResolver makes the generator use r for every path and classification decision
func WithResolver(r *resolve.Resolver) Option {
	return func(g *generatorBase) {
		g.resolver = r
	}
}

type generatorBase struct {
	logger   *slog.Logger
	resolver *resolve.Resolver
}

func newGeneratorBase(shell Shell, opts ...Option) generatorBase {
	var g generatorBase
	for _, opt := range opts {
		opt(&g)
	}
	if g.resolver == nil {
		g.resolver = resolve.New(resolve.WithLogger(g.logger))
	}
	g.logger = log.OrDiscard(g.logger).With("component", "completion", log.ShellKey, shell.Name())

	return g
}

// units returns the completion units of root, falling back to a default resolver for
// generators built as zero values
func (g *generatorBase) units(root *spec.Command) ([]resolve.Unit, *resolve.Resolver, error) {
	r := g.resolver
	if r == nil {
		r = resolve.New()
	}
	units, err := r.Units(root)
	if err != nil {
		return nil, nil, err
	}

	return units, r, nil
}

// typedUnits returns a unit for every typeable subcommand path, aliases of ancestors included,
// for shells keyed by the words typed so far
func (g *generatorBase) typedUnits(root *spec.Command) ([]resolve.Unit, *resolve.Resolver, error) {
	r := g.resolver
	if r == nil {
		r = resolve.New()
	}
	units, err := r.ExpandedUnits(root)
	if err != nil {
		return nil, nil, err
	}

	return units, r, nil
}

func (g *generatorBase) debug(msg string, args ...any) {
	if g.logger != nil {
		g.logger.Debug(msg, args...)
	}
}

// GetGenerator returns the generator for shell
func GetGenerator(shell Shell, opts ...Option) (Generator, error) {
	switch shell {
	case Bash:
		return NewBashGenerator(opts...), nil
	case Fish:
		return NewFishGenerator(opts...), nil
	case Zsh:
		return NewZshGenerator(opts...), nil
	case PowerShell:
		return NewPowerShellGenerator(opts...), nil
	case Elvish:
		return NewElvishGenerator(opts...), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedShell, shell.Name())
}

// Generate renders the completion script of root for shell
func Generate(root *spec.Command, shell Shell, opts ...Option) (string, error) {
	gen, err := GetGenerator(shell, opts...)
	if err != nil {
		return "", err
	}

	return gen.Generate(root)
}

// GenerateTo renders the completion script of root for shell and writes it to w in a single
// write. Nothing is written when generation fails.
func GenerateTo(w io.Writer, root *spec.Command, shell Shell, opts ...Option) error {
	script, err := Generate(root, shell, opts...)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, script); err != nil {
		return fmt.Errorf("failed to write %s completion script: %w", shell.Name(), err)
	}

	return nil
}
