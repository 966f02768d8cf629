package manual

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/napalu/complgen/internal/util"
)

type section struct {
	heading string
	entries []entry
	text    []string
}

type entry struct {
	term string
	desc string
}

// sections lays the manual out independently of the output format. Free text passes through
// text, names through emph and strong.
func (m *Manual) sections(emph, strong, text func(string) string) []section {
	var out []section

	name := strong(m.Name)
	if len(m.About) > 0 {
		name += " - " + text(m.About[0])
	}
	out = append(out, section{heading: "NAME", text: []string{name}})
	out = append(out, section{heading: "SYNOPSIS", text: []string{m.synopsis(emph, strong)}})
	if len(m.About) > 1 {
		s := section{heading: "DESCRIPTION"}
		for _, line := range m.About[1:] {
			s.text = append(s.text, text(line))
		}
		out = append(out, s)
	}

	if len(m.Flags) > 0 {
		s := section{heading: "FLAGS"}
		for _, f := range m.Flags {
			s.entries = append(s.entries, entry{term: joinSwitches(strong, f.Short, f.Long), desc: text(f.Help)})
		}
		out = append(out, s)
	}

	if len(m.Options) > 0 {
		s := section{heading: "OPTIONS"}
		for _, o := range m.Options {
			desc := o.Help
			if len(o.PossibleValues) > 0 {
				desc = strings.TrimSpace(desc + fmt.Sprintf(" [possible values: %s]", strings.Join(o.PossibleValues, ", ")))
			}
			term := joinSwitches(strong, o.Short, o.Long) + "=" + emph(o.Value)
			s.entries = append(s.entries, entry{term: term, desc: text(desc)})
		}
		out = append(out, s)
	}

	if len(m.Positionals) > 0 {
		s := section{heading: "ARGUMENTS"}
		for _, p := range m.Positionals {
			desc := p.Help
			if len(p.PossibleValues) > 0 {
				desc = strings.TrimSpace(desc + fmt.Sprintf(" [possible values: %s]", strings.Join(p.PossibleValues, ", ")))
			}
			s.entries = append(s.entries, entry{term: emph(p.Name), desc: text(desc)})
		}
		out = append(out, s)
	}

	if len(m.Subcommands) > 0 {
		s := section{heading: "COMMANDS"}
		for _, sc := range m.Subcommands {
			term := strong(sc.Name)
			if len(sc.Aliases) > 0 {
				term += " (" + text(strings.Join(sc.Aliases, ", ")) + ")"
			}
			s.entries = append(s.entries, entry{term: term, desc: text(sc.About)})
		}
		out = append(out, s)
	}

	if len(m.Authors) > 0 {
		s := section{heading: "AUTHORS"}
		for _, a := range m.Authors {
			s.text = append(s.text, text(a.String()))
		}
		out = append(out, s)
	}

	if m.Version != "" {
		out = append(out, section{heading: "VERSION", text: []string{text(m.Version)}})
	}

	return out
}

func (m *Manual) synopsis(emph, strong func(string) string) string {
	parts := []string{strong(m.Name)}
	if len(m.Flags) > 0 {
		parts = append(parts, "[FLAGS]")
	}
	if len(m.Options) > 0 {
		parts = append(parts, "[OPTIONS]")
	}
	for _, p := range m.Positionals {
		arg := emph(p.Name)
		if p.Multiple {
			arg += "..."
		}
		if !p.Required {
			arg = "[" + arg + "]"
		}
		parts = append(parts, arg)
	}
	if len(m.Subcommands) > 0 {
		parts = append(parts, "[SUBCOMMAND]")
	}

	return strings.Join(parts, " ")
}

func joinSwitches(strong func(string) string, short, long string) string {
	var parts []string
	if short != "" {
		parts = append(parts, strong(short))
	}
	if long != "" {
		parts = append(parts, strong(long))
	}

	return strings.Join(parts, ", ")
}

func plain(s string) string { return s }

var markdownReplacer = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
)

// escapeMarkdown keeps emphasis and code markers in help text literal
func escapeMarkdown(s string) string {
	return markdownReplacer.Replace(s)
}

// Markdown renders the manual in the dialect go-md2man understands, starting with a title block
func (m *Manual) Markdown() string {
	emph := func(s string) string { return "*" + escapeMarkdown(s) + "*" }
	strong := func(s string) string { return "**" + escapeMarkdown(s) + "**" }

	var buf strings.Builder
	source := strings.TrimSpace(m.Name + " " + m.Version)
	buf.WriteString(fmt.Sprintf("%% %q %q %q %q %q\n", m.Title, m.Section, m.Date, source, "User Commands"))

	for _, s := range m.sections(emph, strong, escapeMarkdown) {
		buf.WriteString("# " + s.heading + "\n")
		for _, line := range s.text {
			buf.WriteString(line + "\n\n")
		}
		for _, e := range s.entries {
			buf.WriteString(e.term + "\n")
			if e.desc != "" {
				buf.WriteString("\t" + strings.ReplaceAll(e.desc, "\n", "\n\t") + "\n")
			}
			buf.WriteString("\n")
		}
	}

	return buf.String()
}

// Roff renders the manual as a troff man page
func (m *Manual) Roff() []byte {
	return md2man.Render([]byte(m.Markdown()))
}

// Text renders the manual for a terminal, wrapped to width columns (util.DefaultWidth when
// width is not positive). Headings are bold when styled is set.
func (m *Manual) Text(width int, styled bool) string {
	if width <= 0 {
		width = util.DefaultWidth
	}
	heading := plain
	if styled {
		style := lipgloss.NewStyle().Bold(true)
		heading = func(s string) string { return style.Render(s) }
	}

	const pad = 4
	wrap := func(s string, depth uint) string {
		limit := width - int(depth)
		if limit < 20 {
			limit = 20
		}
		return indent.String(wordwrap.String(s, limit), depth)
	}

	var buf strings.Builder
	for i, s := range m.sections(plain, plain, plain) {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(heading(s.heading) + "\n")
		for _, line := range s.text {
			buf.WriteString(wrap(line, pad) + "\n")
		}
		for _, e := range s.entries {
			buf.WriteString(wrap(e.term, pad) + "\n")
			if e.desc != "" {
				buf.WriteString(wrap(e.desc, 2*pad) + "\n")
			}
		}
	}

	return buf.String()
}
