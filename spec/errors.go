package spec

import "errors"

var (
	ErrMissingBinName     = errors.New("missing bin name")
	ErrBinNameMismatch    = errors.New("bin name does not match command path")
	ErrArgumentNotFound   = errors.New("argument not found")
	ErrSubcommandNotFound = errors.New("subcommand not found")
	ErrDuplicateArgument  = errors.New("duplicate argument")
	ErrInvalidShort       = errors.New("short flag must be a single character")
	ErrInvalidIndex       = errors.New("positional index must be positive")
	ErrAliasCollision     = errors.New("alias collides with sibling command")
	ErrNilCommand         = errors.New("nil command")
	ErrInvalidCommandName = errors.New("command name must be a single non-empty word")
)

const (
	FmtErrorWithString = "%w: %s"
)
