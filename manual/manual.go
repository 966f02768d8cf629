// Package manual builds a man-page style reference document from a spec.Command and renders it
// as Markdown, roff or terminal text. Only the given command is documented; its subcommands are
// listed by name but not documented recursively.
package manual

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/complgen/internal/log"
	"github.com/napalu/complgen/resolve"
	"github.com/napalu/complgen/spec"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrInvalidDate = errors.New("invalid manual date")

const (
	DefaultSection = "1"
	DateLayout     = "Jan 2006"
)

// Author is one author record, split from the command's author strings
type Author struct {
	Name  string
	Email string
}

func (a Author) String() string {
	if a.Email == "" {
		return a.Name
	}

	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

type Positional struct {
	Name           string
	Help           string
	Required       bool
	Multiple       bool
	PossibleValues []string
}

type Option struct {
	Name           string
	Short          string // -x
	Long           string // --name
	Help           string
	Value          string // value placeholder
	PossibleValues []string
	Required       bool
	Multiple       bool
}

type Flag struct {
	Short    string
	Long     string
	Help     string
	Multiple bool
}

// Subcommand is a visible direct child listed in the COMMANDS section
type Subcommand struct {
	Name    string
	About   string
	Aliases []string
}

// Manual is the document for one command
type Manual struct {
	Name        string
	Title       string
	Section     string
	Date        string
	Version     string
	About       []string
	Authors     []Author
	Positionals []Positional
	Options     []Option
	Flags       []Flag
	Subcommands []Subcommand
}

// ConfigureManualFunc configures the manual builder
type ConfigureManualFunc func(*settings)

type settings struct {
	section string
	date    string
	logger  *slog.Logger
}

// WithSection sets the man section, 1 by default
func WithSection(section string) ConfigureManualFunc {
	return func(s *settings) {
		s.section = section
	}
}

// WithDate sets the manual date. Any common date notation is accepted and rendered as "Jan 2006".
func WithDate(date string) ConfigureManualFunc {
	return func(s *settings) {
		s.date = date
	}
}

func WithLogger(logger *slog.Logger) ConfigureManualFunc {
	return func(s *settings) {
		s.logger = logger
	}
}

// New builds the manual of root
func New(root *spec.Command, configs ...ConfigureManualFunc) (*Manual, error) {
	if root == nil {
		return nil, spec.ErrNilCommand
	}

	s := settings{section: DefaultSection}
	for _, config := range configs {
		config(&s)
	}
	logger := log.WithComponent(log.OrDiscard(s.logger), "manual")

	m := &Manual{
		Name:    root.Name,
		Title:   cases.Upper(language.Und).String(root.Name),
		Section: s.section,
		Version: root.Version,
	}

	if s.date != "" {
		date, err := normalizeDate(s.date)
		if err != nil {
			return nil, err
		}
		m.Date = date
	}

	if root.About != "" {
		m.About = append(m.About, root.About)
	}
	if root.LongAbout != "" && root.LongAbout != root.About {
		m.About = append(m.About, root.LongAbout)
	}

	for _, authors := range root.Authors {
		for _, author := range strings.Split(authors, "\n") {
			if author = strings.TrimSpace(author); author != "" {
				m.Authors = append(m.Authors, parseAuthor(author))
			}
		}
	}

	p := resolve.Classify(root.Args)
	for _, arg := range p.Positionals {
		m.Positionals = append(m.Positionals, Positional{
			Name:           arg.Name,
			Help:           arg.HelpText(),
			Required:       arg.Required,
			Multiple:       arg.Multiple,
			PossibleValues: arg.PossibleValues,
		})
	}
	for _, arg := range p.Options {
		short, long := switchTokens(arg)
		m.Options = append(m.Options, Option{
			Name:           arg.Name,
			Short:          short,
			Long:           long,
			Help:           arg.HelpText(),
			Value:          arg.Name,
			PossibleValues: arg.PossibleValues,
			Required:       arg.Required,
			Multiple:       arg.Multiple,
		})
	}
	for _, arg := range p.Flags {
		short, long := switchTokens(arg)
		m.Flags = append(m.Flags, Flag{Short: short, Long: long, Help: arg.HelpText(), Multiple: arg.Multiple})
	}
	for _, arg := range p.Custom {
		logger.Debug("argument with custom heading left out", log.ArgKey, arg.Name, "heading", arg.HelpHeading)
	}

	for _, sc := range root.Subcommands {
		if sc.Hidden {
			continue
		}
		m.Subcommands = append(m.Subcommands, Subcommand{Name: sc.Name, About: sc.About, Aliases: sc.VisibleAliases()})
	}

	return m, nil
}

// Manuals returns the manuals generated for root. Subcommands are not documented separately,
// so the result always holds a single manual.
func Manuals(root *spec.Command, configs ...ConfigureManualFunc) ([]*Manual, error) {
	m, err := New(root, configs...)
	if err != nil {
		return nil, err
	}

	return []*Manual{m}, nil
}

func switchTokens(arg *spec.Argument) (short, long string) {
	if arg.Short != "" {
		short = "-" + arg.Short
	}
	if arg.Long != "" {
		long = "--" + arg.Long
	}

	return short, long
}

func normalizeDate(date string) (string, error) {
	t, err := dateparse.ParseAny(date)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidDate, date, err)
	}

	return t.Format(DateLayout), nil
}

func parseAuthor(s string) Author {
	if strings.HasSuffix(s, ">") {
		if idx := strings.LastIndex(s, "<"); idx > 0 {
			return Author{
				Name:  strings.TrimSpace(s[:idx]),
				Email: strings.TrimSpace(s[idx+1 : len(s)-1]),
			}
		}
	}

	return Author{Name: s}
}

// Today returns the current date in DateLayout, for callers wanting a dated manual
func Today() string {
	return time.Now().Format(DateLayout)
}
