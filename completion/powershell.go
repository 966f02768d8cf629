package completion

import (
	"fmt"
	"strings"

	"github.com/napalu/complgen/internal/log"
	"github.com/napalu/complgen/resolve"
	"github.com/napalu/complgen/spec"
)

// PowerShellGenerator renders a single Register-ArgumentCompleter block whose switch is
// keyed by the subcommand path typed so far, joined with ';'
type PowerShellGenerator struct {
	generatorBase
}

func NewPowerShellGenerator(opts ...Option) *PowerShellGenerator {
	return &PowerShellGenerator{generatorBase: newGeneratorBase(PowerShell, opts...)}
}

func (g *PowerShellGenerator) Generate(root *spec.Command) (string, error) {
	units, r, err := g.typedUnits(root)
	if err != nil {
		return "", err
	}

	binName := root.BinName
	var script strings.Builder
	script.WriteString(fmt.Sprintf(`using namespace System.Management.Automation
using namespace System.Management.Automation.Language

Register-ArgumentCompleter -Native -CommandName '%[1]s' -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $commandElements = $commandAst.CommandElements
    $command = @(
        '%[1]s'
        for ($i = 1; $i -lt $commandElements.Count; $i++) {
            $element = $commandElements[$i]
            if ($element -isnot [StringConstantExpressionAst] -or
                $element.StringConstantType -ne [StringConstantType]::BareWord -or
                $element.Value.StartsWith('-') -or
                $element.Value -eq $wordToComplete) {
                break
            }
            $element.Value
        }) -join ';'

    $completions = @(switch ($command) {`, escapeSingleQuoted(binName)))

	for _, unit := range units {
		key := strings.ReplaceAll(unit.Path, resolve.PathSeparator, ";")
		script.WriteString(fmt.Sprintf(`
        '%s' {`, escapeSingleQuoted(key)))

		for _, arg := range resolve.Switches(unit.Command.Args) {
			shorts, longs := resolve.SwitchTokens(arg)
			for _, tok := range append(shorts, longs...) {
				script.WriteString(psResult(tok, strings.TrimLeft(tok, "-"), "ParameterName", arg.HelpText()))
			}
		}
		for _, arg := range resolve.Classify(unit.Command.Args).Positionals {
			for _, v := range arg.PossibleValues {
				script.WriteString(psResult(v, v, "ParameterValue", arg.HelpText()))
			}
		}

		children, err := r.DirectChildren(unit.Command)
		if err != nil {
			return "", err
		}
		for _, child := range children {
			script.WriteString(psResult(child.Name, child.Name, "ParameterValue", child.Command.About))
		}

		script.WriteString(`
            break
        }`)
	}

	script.WriteString(`
    })

    $completions.Where{ $_.CompletionText -like "$wordToComplete*" } |
        Sort-Object -Property ListItemText
}
`)

	g.debug("generated powershell completion", log.BinNameKey, binName, "units", len(units))

	return script.String(), nil
}

// psResult renders one CompletionResult. The tooltip may not be empty, text stands in for missing help.
func psResult(text, listItem, resultType, help string) string {
	help = oneLine(help)
	if help == "" {
		help = text
	}

	return fmt.Sprintf(`
            [CompletionResult]::new('%s', '%s', [CompletionResultType]::%s, '%s')`,
		escapeSingleQuoted(text), escapeSingleQuoted(listItem), resultType, escapeSingleQuoted(help))
}
