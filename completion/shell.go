package completion

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedShell = errors.New("unsupported shell")
	ErrNoScript         = errors.New("no completion script generated")
	ErrNameCollision    = errors.New("completion paths map to the same function name")
)

// Shell is one of the supported completion dialects
type Shell int

const (
	Bash Shell = iota
	Fish
	Zsh
	PowerShell
	Elvish
)

var shellNames = [...]string{
	Bash:       "bash",
	Fish:       "fish",
	Zsh:        "zsh",
	PowerShell: "powershell",
	Elvish:     "elvish",
}

// Shells returns every supported shell
func Shells() []Shell {
	return []Shell{Bash, Fish, Zsh, PowerShell, Elvish}
}

// ParseShell matches s case-insensitively against the supported shell names
func ParseShell(s string) (Shell, error) {
	for _, shell := range Shells() {
		if strings.EqualFold(s, shell.Name()) {
			return shell, nil
		}
	}

	return 0, fmt.Errorf("%w: %q [valid values: %s]", ErrUnsupportedShell, s, strings.Join(shellNames[:], ", "))
}

// Name returns the lower-case name used on the command line
func (s Shell) Name() string {
	if !s.valid() {
		return fmt.Sprintf("shell(%d)", int(s))
	}

	return shellNames[s]
}

func (s Shell) String() string {
	return strings.ToUpper(s.Name())
}

func (s Shell) valid() bool {
	return s >= Bash && s <= Elvish
}

// Set implements pflag.Value so a Shell can be bound to a command-line flag directly
func (s *Shell) Set(value string) error {
	shell, err := ParseShell(value)
	if err != nil {
		return err
	}
	*s = shell

	return nil
}

// Type implements pflag.Value
func (s *Shell) Type() string {
	return "shell"
}

// FileName returns the name of the script file generated for binName
func (s Shell) FileName(binName string) string {
	switch s {
	case Bash:
		return binName + ".bash"
	case Fish:
		return binName + ".fish"
	case Zsh:
		return "_" + binName
	case PowerShell:
		return "_" + binName + ".ps1"
	case Elvish:
		return binName + ".elv"
	}

	return binName
}

// FileConventions returns the naming rules of the shell's user completion directory, which
// differ from FileName for bash (bash-completion looks scripts up by command name)
func (s Shell) FileConventions() CompletionFileInfo {
	switch s {
	case Bash:
		return CompletionFileInfo{
			Prefix:    "", // No prefix needed
			Extension: "", // No extension needed
			Comment:   "Bash completion files are typically just the command name",
		}
	case Zsh:
		return CompletionFileInfo{
			Prefix:    "_", // zsh completions typically start with underscore
			Extension: "",  // No extension needed
			Comment:   "Zsh completion files should start with _ (e.g., _git)",
		}
	case Fish:
		return CompletionFileInfo{
			Extension: ".fish",
			Comment:   "Fish completion files must end in .fish",
		}
	case PowerShell:
		return CompletionFileInfo{
			Extension: ".ps1",
			Comment:   "PowerShell completion files must end in .ps1",
		}
	case Elvish:
		return CompletionFileInfo{
			Extension: ".elv",
			Comment:   "Elvish modules must end in .elv and are loaded with use",
		}
	}

	return CompletionFileInfo{}
}
