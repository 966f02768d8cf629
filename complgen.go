package complgen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/napalu/complgen/completion"
	"github.com/napalu/complgen/manual"
	"github.com/napalu/complgen/spec"
)

// GenerateCompletions assigns bin names below root, renders the completion script for shell
// and writes it to outDir under the shell's file name for binName. The script is written to a
// temporary file first and renamed into place. It returns the path of the script.
func GenerateCompletions(root *spec.Command, binName string, shell completion.Shell, outDir string, opts ...completion.Option) (string, error) {
	if root == nil {
		return "", spec.ErrNilCommand
	}
	spec.BuildBinNames(root, binName)

	script, err := completion.Generate(root, shell, opts...)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(outDir, shell.FileName(binName))
	if err := completion.WriteFileAtomic(path, []byte(script), 0644); err != nil {
		return "", err
	}

	return path, nil
}

// GenerateCompletionsTo assigns bin names below root and writes the completion script for
// shell to w in a single write
func GenerateCompletionsTo(root *spec.Command, binName string, shell completion.Shell, w io.Writer, opts ...completion.Option) error {
	if root == nil {
		return spec.ErrNilCommand
	}
	spec.BuildBinNames(root, binName)

	return completion.GenerateTo(w, root, shell, opts...)
}

// GenerateManuals builds the manuals of root
func GenerateManuals(root *spec.Command, configs ...manual.ConfigureManualFunc) ([]*manual.Manual, error) {
	return manual.Manuals(root, configs...)
}
