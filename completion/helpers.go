package completion

import (
	"fmt"
	"strings"

	"github.com/napalu/complgen/resolve"
)

// oneLine folds multi-line help into a single line
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// functionName maps a completion path onto a shell function identifier
func functionName(path string) string {
	var b strings.Builder
	b.Grow(len(path) + 1)
	b.WriteByte('_')
	for _, r := range path {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	return b.String()
}

// checkFunctionNames fails when two completion paths map to the same function identifier,
// e.g. "db:migrate" and "db.migrate"
func checkFunctionNames(units []resolve.Unit) error {
	seen := make(map[string]string, len(units))
	for _, u := range units {
		fn := functionName(u.Path)
		if other, ok := seen[fn]; ok && other != u.Path {
			return fmt.Errorf("%w: %q and %q are both %s", ErrNameCollision, other, u.Path, fn)
		}
		seen[fn] = u.Path
	}

	return nil
}

var doubleQuotedReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"`", "\\`",
)

// escapeDoubleQuoted makes s safe inside a bash double-quoted string
func escapeDoubleQuoted(s string) string {
	return doubleQuotedReplacer.Replace(s)
}

// fish knows no backtick substitution, so only these three are escapes between double quotes
var fishDoubleQuotedReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
)

func escapeFishDoubleQuoted(s string) string {
	return fishDoubleQuotedReplacer.Replace(s)
}

var fishReplacer = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
)

func escapeFish(desc string) string {
	return fishReplacer.Replace(oneLine(desc))
}

// escapeSingleQuoted doubles single quotes, the only escape in PowerShell and Elvish literals
func escapeSingleQuoted(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

var zshHelpReplacer = strings.NewReplacer(
	`\`, `\\`,
	`'`, `'\''`,
	`[`, `\[`,
	`]`, `\]`,
)

func escapeZshHelp(s string) string {
	return zshHelpReplacer.Replace(oneLine(s))
}

var zshValueReplacer = strings.NewReplacer(
	`\`, `\\`,
	`'`, `'\''`,
	`(`, `\(`,
	`)`, `\)`,
	` `, `\ `,
)

func escapeZshValue(s string) string {
	return zshValueReplacer.Replace(s)
}

var zshDescribeReplacer = strings.NewReplacer(
	`\`, `\\`,
	`'`, `'\''`,
	`:`, `\:`,
)

// escapeZshDescribe escapes one side of a name:description pair and positional help
func escapeZshDescribe(s string) string {
	return zshDescribeReplacer.Replace(oneLine(s))
}
