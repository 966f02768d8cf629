package cli

import (
	"github.com/napalu/complgen/cobraspec"
	"github.com/napalu/complgen/completion"
	"github.com/spf13/cobra"
)

// newSelfCompletionCommand renders complgen's own completion script by converting its cobra
// tree, so the generator is exercised on itself
func newSelfCompletionCommand(g *globalFlags) *cobra.Command {
	names := make([]string, 0, len(completion.Shells()))
	for _, s := range completion.Shells() {
		names = append(names, s.Name())
	}

	return &cobra.Command{
		Use:       "self-completion <shell>",
		Short:     "Generate the completion script of complgen itself",
		ValidArgs: names,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, err := completion.ParseShell(args[0])
			if err != nil {
				return err
			}
			root, err := cobraspec.FromCobra(cmd.Root(), "")
			if err != nil {
				return err
			}

			return completion.GenerateTo(cmd.OutOrStdout(), root, shell, completion.WithLogger(g.log()))
		},
	}
}
