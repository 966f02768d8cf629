package spec

import (
	"fmt"
	"strings"
)

// Argument defines a flag, an option or a positional parameter of a Command
type Argument struct {
	Name           string   `yaml:"name"`
	Short          string   `yaml:"short,omitempty"`
	Long           string   `yaml:"long,omitempty"`
	TakesValue     bool     `yaml:"takes_value,omitempty"`
	Index          int      `yaml:"index,omitempty"` // 1-based; zero means not positional
	Help           string   `yaml:"help,omitempty"`
	LongHelp       string   `yaml:"long_help,omitempty"`
	Aliases        []string `yaml:"aliases,omitempty"`
	Blacklist      []string `yaml:"conflicts_with,omitempty"`
	HelpHeading    string   `yaml:"help_heading,omitempty"`
	PossibleValues []string `yaml:"possible_values,omitempty"`
	Required       bool     `yaml:"required,omitempty"`
	Multiple       bool     `yaml:"multiple,omitempty"`
	Hidden         bool     `yaml:"hidden,omitempty"`

	// first error raised by a config func in NewArg, reported by Validate
	configErr error
}

// NewArg convenience initialization method to configure arguments. A config func failing
// leaves its field unset; the first such error is kept on the Argument and returned by Validate
// and ConfigErr. Use Set to observe errors immediately.
func NewArg(name string, configs ...ConfigureArgumentFunc) *Argument {
	argument := &Argument{Name: name}
	for _, config := range configs {
		var err error
		config(argument, &err)
		if err != nil && argument.configErr == nil {
			argument.configErr = err
		}
	}

	return argument
}

// ConfigErr returns the first configuration error NewArg encountered, or nil
func (a *Argument) ConfigErr() error {
	return a.configErr
}

// Set configures the Argument instance with the provided ConfigureArgumentFunc(s),
// and returns an error if a configuration results in an error.
//
// Usage example:
//
//	arg := &Argument{Name: "output"}
//	err := arg.Set(
//	    WithShort("o"),
//	    WithLong("output"),
//	    SetTakesValue(true),
//	)
//	if err != nil {
//	    // handle error
//	}
func (a *Argument) Set(configs ...ConfigureArgumentFunc) error {
	var err error
	for _, config := range configs {
		config(a, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// HasSwitch reports whether the argument can be addressed as -x or --long
func (a *Argument) HasSwitch() bool {
	return a.Short != "" || a.Long != ""
}

// HelpText returns LongHelp when set, Help otherwise
func (a *Argument) HelpText() string {
	if a.LongHelp != "" {
		return a.LongHelp
	}

	return a.Help
}

// String returns a short usage representation such as "-o, --output <output>"
func (a *Argument) String() string {
	var parts []string
	if a.Short != "" {
		parts = append(parts, "-"+a.Short)
	}
	if a.Long != "" {
		parts = append(parts, "--"+a.Long)
	}
	if len(parts) == 0 {
		return fmt.Sprintf("<%s>", a.Name)
	}
	usage := strings.Join(parts, ", ")
	if a.TakesValue {
		usage += fmt.Sprintf(" <%s>", a.Name)
	}

	return usage
}
