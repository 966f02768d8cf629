package spec

// ConfigureCommandFunc is used when defining Command values
type ConfigureCommandFunc func(command *Command)

// NewCommand creates and returns a new Command called name. This function takes variadic
// `ConfigureCommandFunc` functions to customize the created command.
func NewCommand(name string, configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{Name: name}
	for _, config := range configs {
		config(cmd)
	}

	return cmd
}

// Set is a helper config function that allows setting multiple configuration functions on a command.
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// WithAbout sets the one-line description of the command
func WithAbout(about string) ConfigureCommandFunc {
	return func(command *Command) {
		command.About = about
	}
}

// WithLongAbout sets the long description used by manuals
func WithLongAbout(about string) ConfigureCommandFunc {
	return func(command *Command) {
		command.LongAbout = about
	}
}

// WithVersion sets the version shown in manuals
func WithVersion(version string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Version = version
	}
}

// WithAuthor appends an author. A single value may hold several authors separated by newlines.
func WithAuthor(author string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Authors = append(command.Authors, author)
	}
}

// WithArgs appends arguments in order
func WithArgs(args ...*Argument) ConfigureCommandFunc {
	return func(command *Command) {
		command.Args = append(command.Args, args...)
	}
}

// WithSubcommands appends child commands in order
func WithSubcommands(subcommands ...*Command) ConfigureCommandFunc {
	return func(command *Command) {
		command.Subcommands = append(command.Subcommands, subcommands...)
	}
}

// WithAlias adds a visible alias
func WithAlias(name string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Aliases = append(command.Aliases, Alias{Name: name})
	}
}

// WithHiddenAlias adds an alias which is completed but not listed in descriptions
func WithHiddenAlias(name string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Aliases = append(command.Aliases, Alias{Name: name, Hidden: true})
	}
}

// WithBinName sets the fully-qualified invocation path. BuildBinNames is usually the better choice.
func WithBinName(binName string) ConfigureCommandFunc {
	return func(command *Command) {
		command.BinName = binName
	}
}

// SetHidden when true, the command is omitted from descriptive listings
func SetHidden(hidden bool) ConfigureCommandFunc {
	return func(command *Command) {
		command.Hidden = hidden
	}
}
