package cli

import (
	"fmt"

	"github.com/napalu/complgen"
	"github.com/napalu/complgen/completion"
	"github.com/napalu/complgen/internal/log"
	"github.com/napalu/complgen/spec"
	"github.com/spf13/cobra"
)

type completionFlags struct {
	specPath string
	shell    completion.Shell
	binName  string
	outDir   string
}

func (f *completionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.specPath, "spec", "s", "", "YAML spec file describing the command tree (- for stdin)")
	cmd.Flags().Var(&f.shell, "shell", "target shell: bash, fish, zsh, powershell or elvish")
	cmd.Flags().StringVar(&f.binName, "bin", "", "program name used in the script (default: the tree's bin_name or name)")
	_ = cmd.MarkFlagRequired("spec")
	_ = cmd.MarkFlagRequired("shell")
}

func newCompletionCommand(g *globalFlags) *cobra.Command {
	f := &completionFlags{}
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate a completion script",
		Long: `Generate a completion script for the command tree in --spec.

The script is printed to stdout unless --out is given, in which case it is written
to <out>/<file> where <file> follows the shell's convention: tool.bash, tool.fish,
_tool, _tool.ps1 or tool.elv.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadSpec(cmd, f.specPath)
			if err != nil {
				return err
			}
			binName := f.binName
			if binName == "" {
				binName = root.BinName
			}
			opts := []completion.Option{completion.WithLogger(g.log())}

			if f.outDir == "" {
				return complgen.GenerateCompletionsTo(root, binName, f.shell, cmd.OutOrStdout(), opts...)
			}

			path, err := complgen.GenerateCompletions(root, binName, f.shell, f.outDir, opts...)
			if err != nil {
				return err
			}
			g.log().Info("wrote completion script", log.ShellKey, f.shell.Name(), log.PathKey, path)
			fmt.Fprintln(cmd.OutOrStdout(), path)

			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringVarP(&f.outDir, "out", "o", "", "directory to write the script to")

	return cmd
}

func newInstallCommand(g *globalFlags) *cobra.Command {
	f := &completionFlags{}
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install a completion script into the user's completion directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadSpec(cmd, f.specPath)
			if err != nil {
				return err
			}
			if f.binName != "" {
				root.BinName = f.binName
			}

			manager, err := completion.NewManager(f.shell, root.BinName, completion.WithLogger(g.log()))
			if err != nil {
				return err
			}
			// bin names are re-derived so --bin applies to every subcommand
			spec.BuildBinNames(root, root.BinName)
			if err := manager.Accept(root); err != nil {
				return err
			}
			path, err := manager.SaveCompletion()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", path, manager.Paths.Comment)

			return nil
		},
	}
	f.register(cmd)

	return cmd
}

func newPathsCommand() *cobra.Command {
	var shell completion.Shell
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Show the user completion directories of a shell on this system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := completion.GetCompletionPaths(shell)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "primary:  %s\n", paths.Primary)
			fmt.Fprintf(out, "fallback: %s\n", paths.Fallback)
			fmt.Fprintf(out, "file:     %s\n", completion.GetCompletionFilePath(paths.Primary, shell, "<program>"))
			fmt.Fprintf(out, "%s\n", paths.Comment)

			return nil
		},
	}
	cmd.Flags().Var(&shell, "shell", "target shell: bash, fish, zsh, powershell or elvish")
	_ = cmd.MarkFlagRequired("shell")

	return cmd
}
