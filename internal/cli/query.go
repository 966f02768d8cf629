package cli

import (
	"fmt"
	"strings"

	"github.com/napalu/complgen/completion"
	"github.com/spf13/cobra"
)

func newQueryCommand(g *globalFlags) *cobra.Command {
	var specPath string
	cmd := &cobra.Command{
		Use:   "query <line>",
		Short: "Print the completion candidates for a partial command line",
		Long: `Print, one per line, the candidates the generated bash script offers for <line>,
the command line typed up to the cursor. A trailing space starts a new word.`,
		Example: `  complgen query --spec tool.yaml "tool foo --"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadSpec(cmd, specPath)
			if err != nil {
				return err
			}
			candidates, err := completion.Candidates(root, strings.Join(args, " "), completion.WithLogger(g.log()))
			if err != nil {
				return err
			}
			for _, c := range candidates {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&specPath, "spec", "s", "", "YAML spec file describing the command tree (- for stdin)")
	_ = cmd.MarkFlagRequired("spec")

	return cmd
}
