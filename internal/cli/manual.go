package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/napalu/complgen"
	"github.com/napalu/complgen/internal/util"
	"github.com/napalu/complgen/manual"
	"github.com/spf13/cobra"
)

const (
	formatRoff     = "roff"
	formatMarkdown = "markdown"
	formatText     = "text"
)

func newManualCommand(g *globalFlags) *cobra.Command {
	var (
		specPath string
		format   string
		date     string
		section  string
		width    int
		out      string
	)

	cmd := &cobra.Command{
		Use:   "manual",
		Short: "Render the manual page of the command tree",
		Long: `Render the manual page of the root command in --spec as roff (for man),
Markdown or plain terminal text. Subcommands are listed but not documented.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadSpec(cmd, specPath)
			if err != nil {
				return err
			}

			configs := []manual.ConfigureManualFunc{manual.WithSection(section), manual.WithLogger(g.log())}
			if date != "" {
				configs = append(configs, manual.WithDate(date))
			}
			manuals, err := complgen.GenerateManuals(root, configs...)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			toTerminal := out == "" && util.IsStdoutTerminal()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create manual file: %w", err)
				}
				defer f.Close()
				w = f
			}

			for _, m := range manuals {
				var rendered []byte
				switch format {
				case formatRoff:
					rendered = m.Roff()
				case formatMarkdown:
					rendered = []byte(m.Markdown())
				case formatText:
					if width <= 0 && toTerminal {
						width = util.StdoutWidth()
					}
					rendered = []byte(m.Text(width, toTerminal))
				default:
					return fmt.Errorf("unknown format %q: use %s, %s or %s", format, formatRoff, formatMarkdown, formatText)
				}
				if _, err := w.Write(rendered); err != nil {
					return fmt.Errorf("failed to write manual: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&specPath, "spec", "s", "", "YAML spec file describing the command tree (- for stdin)")
	cmd.Flags().StringVarP(&format, "format", "f", formatRoff, "output format: roff, markdown or text")
	cmd.Flags().StringVar(&date, "date", "", "manual date, any common notation (e.g. 2024-05-01)")
	cmd.Flags().StringVar(&section, "section", manual.DefaultSection, "man section")
	cmd.Flags().IntVar(&width, "width", 0, "wrap width for text output (default: terminal width)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "file to write to instead of stdout")
	_ = cmd.MarkFlagRequired("spec")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{formatRoff, formatMarkdown, formatText}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
