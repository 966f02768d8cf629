package spec

import "strings"

// Alias is an alternate name for a Command. A hidden alias is accepted and completed
// but not advertised in descriptive listings.
type Alias struct {
	Name   string `yaml:"name"`
	Hidden bool   `yaml:"hidden,omitempty"`
}

// Command defines the program or one of its (nested) subcommands
type Command struct {
	Name        string      `yaml:"name"`
	BinName     string      `yaml:"bin_name,omitempty"`
	About       string      `yaml:"about,omitempty"`
	LongAbout   string      `yaml:"long_about,omitempty"`
	Version     string      `yaml:"version,omitempty"`
	Authors     []string    `yaml:"authors,omitempty"`
	Args        []*Argument `yaml:"args,omitempty"`
	Subcommands []*Command  `yaml:"subcommands,omitempty"`
	Aliases     []Alias     `yaml:"aliases,omitempty"`
	Hidden      bool        `yaml:"hidden,omitempty"`
}

// HasSubcommands reports whether c has at least one child command
func (c *Command) HasSubcommands() bool {
	return len(c.Subcommands) > 0
}

// MatchesName reports whether name is c's name or one of its aliases
func (c *Command) MatchesName(name string) bool {
	if c.Name == name {
		return true
	}
	for _, a := range c.Aliases {
		if a.Name == name {
			return true
		}
	}

	return false
}

// FindSubcommand returns the direct child whose name or alias equals name, or nil
func (c *Command) FindSubcommand(name string) *Command {
	for _, sc := range c.Subcommands {
		if sc.MatchesName(name) {
			return sc
		}
	}

	return nil
}

// FindArg returns the argument called name, or nil
func (c *Command) FindArg(name string) *Argument {
	for _, a := range c.Args {
		if a.Name == name {
			return a
		}
	}

	return nil
}

// VisibleAliases returns the names of the aliases which are not hidden
func (c *Command) VisibleAliases() []string {
	var names []string
	for _, a := range c.Aliases {
		if !a.Hidden {
			names = append(names, a.Name)
		}
	}

	return names
}

// AliasNames returns the names of all aliases, hidden ones included
func (c *Command) AliasNames() []string {
	names := make([]string, 0, len(c.Aliases))
	for _, a := range c.Aliases {
		names = append(names, a.Name)
	}

	return names
}

// Path splits the bin name into its space-delimited segments
func (c *Command) Path() []string {
	if c.BinName == "" {
		return nil
	}

	return strings.Split(c.BinName, " ")
}

// Visit walks c and its descendants depth-first. Returning false from visitor skips the
// children of the visited command.
func (c *Command) Visit(visitor func(cmd *Command, level int) bool, level int) {
	if !visitor(c, level) {
		return
	}

	for _, sc := range c.Subcommands {
		sc.Visit(visitor, level+1)
	}
}
