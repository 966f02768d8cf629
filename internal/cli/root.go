// Package cli implements the complgen command line: it loads a command tree from a YAML spec
// file and renders completion scripts or manuals from it.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/napalu/complgen/internal/log"
	"github.com/napalu/complgen/spec"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

// NewRootCommand creates the root command with every subcommand attached
func NewRootCommand(version string) *cobra.Command {
	g := &globalFlags{}
	cmd := &cobra.Command{
		Use:   "complgen",
		Short: "Generate shell completions and manuals from a command spec",
		Long: `complgen reads a YAML description of a command line interface and renders
shell completion scripts (bash, zsh, fish, powershell, elvish) or a manual page for it.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := log.FromEnv()
			if cmd.Flags().Changed("log-level") {
				cfg.Level = g.logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Format = log.Format(g.logFormat)
			}
			cfg.Output = cmd.ErrOrStderr()
			g.logger = log.New(cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&g.logFormat, "log-format", string(log.FormatText), "log format (text, json)")

	cmd.AddCommand(
		newCompletionCommand(g),
		newInstallCommand(g),
		newManualCommand(g),
		newPathsCommand(),
		newQueryCommand(g),
		newSelfCompletionCommand(g),
	)

	return cmd
}

// loadSpec reads the command tree from path, or from stdin when path is "-"
func loadSpec(cmd *cobra.Command, path string) (*spec.Command, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open spec file: %w", err)
		}
		defer f.Close()
		r = f
	}

	return spec.LoadYAML(r)
}

func (g *globalFlags) log() *slog.Logger {
	return log.OrDiscard(g.logger)
}
