package completion

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/napalu/complgen/internal/log"
	"github.com/napalu/complgen/spec"
)

// Manager generates a completion script and installs it into the user's completion
// directory for a given shell
type Manager struct {
	Shell       Shell
	ProgramName string
	Paths       CompletionPaths
	generator   Generator
	logger      *slog.Logger
	script      string
}

// NewManager creates a completion manager which can be used to manage and save completion scripts for a given shell
func NewManager(shell Shell, programName string, opts ...Option) (*Manager, error) {
	paths, err := GetCompletionPaths(shell)
	if err != nil {
		return nil, fmt.Errorf("failed to get completion paths: %w", err)
	}
	generator, err := GetGenerator(shell, opts...)
	if err != nil {
		return nil, err
	}

	base := newGeneratorBase(shell, opts...)

	return &Manager{
		Shell:       shell,
		ProgramName: filepath.Base(programName),
		Paths:       paths,
		generator:   generator,
		logger:      base.logger,
	}, nil
}

// Accept generates and stores the completion script of root
func (m *Manager) Accept(root *spec.Command) error {
	script, err := m.generator.Generate(root)
	if err != nil {
		return err
	}
	m.script = script

	return nil
}

// Script returns the script stored by Accept
func (m *Manager) Script() string {
	return m.script
}

// SaveCompletion saves the previously generated completion script and returns its path
func (m *Manager) SaveCompletion() (string, error) {
	if m.script == "" {
		return "", ErrNoScript
	}

	dir, err := EnsureCompletionPath(m.Paths)
	if err != nil {
		return "", err
	}

	path := GetCompletionFilePath(dir, m.Shell, m.ProgramName)
	if err := WriteFileAtomic(path, []byte(m.script), 0644); err != nil {
		return "", fmt.Errorf("failed to write completion file: %w", err)
	}
	m.logger.Info("installed completion script", log.PathKey, path)

	return path, nil
}
