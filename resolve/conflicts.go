package resolve

import (
	"strings"

	"github.com/napalu/complgen/spec"
)

// ConflictTokens returns the space-joined -x and --long tokens of every argument arg conflicts
// with, or "" when arg has no conflicts. A conflict naming an argument missing from cmd is an error.
func (r *Resolver) ConflictTokens(cmd *spec.Command, arg *spec.Argument) (string, error) {
	if len(arg.Blacklist) == 0 {
		return "", nil
	}

	var tokens []string
	for _, name := range arg.Blacklist {
		other, err := r.FindArg(cmd, name)
		if err != nil {
			return "", err
		}
		if other.Short != "" {
			tokens = append(tokens, "-"+other.Short)
		}
		if other.Long != "" {
			tokens = append(tokens, "--"+other.Long)
		}
	}

	return strings.Join(tokens, " "), nil
}
