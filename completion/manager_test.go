package completion

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/napalu/complgen/spec"
)

func TestManager_Accept(t *testing.T) {
	tests := []struct {
		name        string
		shell       Shell
		programName string
		checkScript func(t *testing.T, script string)
	}{
		{
			name:        "bash completion",
			shell:       Bash,
			programName: "/usr/local/bin/tool",
			checkScript: func(t *testing.T, script string) {
				checks := []struct {
					name    string
					content string
				}{
					{"dispatcher", "_tool_dispatch() {"},
					{"root function", "_tool() {"},
					{"subcommand function", "_tool__foo() {"},
					{"registration", "complete -F _tool_dispatch"},
				}

				for _, check := range checks {
					if !strings.Contains(script, check.content) {
						t.Errorf("Missing %s: should contain %q", check.name, check.content)
					}
				}
			},
		},
		{
			name:        "zsh completion",
			shell:       Zsh,
			programName: "tool",
			checkScript: func(t *testing.T, script string) {
				if !strings.HasPrefix(script, "#compdef tool") {
					t.Error("zsh script should start with #compdef")
				}
			},
		},
		{
			name:        "elvish completion",
			shell:       Elvish,
			programName: "tool",
			checkScript: func(t *testing.T, script string) {
				if !strings.Contains(script, "&'tool;foo'= {") {
					t.Error("elvish script should have an entry for tool;foo")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager, err := NewManager(tt.shell, tt.programName)
			if err != nil {
				t.Fatal(err)
			}
			if manager.ProgramName != "tool" {
				t.Errorf("ProgramName = %q, want base name", manager.ProgramName)
			}

			if err := manager.Accept(withSubcommand(t)); err != nil {
				t.Fatalf("Accept() error = %v", err)
			}
			if manager.Script() == "" {
				t.Fatal("Accept() stored an empty script")
			}
			tt.checkScript(t, manager.Script())
		})
	}
}

func TestManager_AcceptInvalid(t *testing.T) {
	manager, err := NewManager(Bash, "tool")
	if err != nil {
		t.Fatal(err)
	}

	root := spec.NewCommand("tool", spec.WithSubcommands(spec.NewCommand("foo")))
	root.BinName = "tool"
	if err := manager.Accept(root); !errors.Is(err, spec.ErrMissingBinName) {
		t.Errorf("Accept() error = %v, want %v", err, spec.ErrMissingBinName)
	}
	if manager.Script() != "" {
		t.Error("failed generation must not store a script")
	}
}

func TestNewManager_InvalidShell(t *testing.T) {
	if _, err := NewManager(Shell(99), "tool"); !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("NewManager() error = %v, want %v", err, ErrUnsupportedShell)
	}
}

func TestManager_SaveCompletion(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name      string
		shell     Shell
		accept    bool
		checkFile func(*testing.T, string)
		wantErr   error
	}{
		{
			name:   "bash save",
			shell:  Bash,
			accept: true,
			checkFile: func(t *testing.T, path string) {
				if filepath.Base(path) != "tool" {
					t.Error("Bash completion file should not have extension")
				}
			},
		},
		{
			name:   "zsh save",
			shell:  Zsh,
			accept: true,
			checkFile: func(t *testing.T, path string) {
				if !strings.HasPrefix(filepath.Base(path), "_") {
					t.Error("ZSH completion file should start with _")
				}
			},
		},
		{
			name:   "fish save",
			shell:  Fish,
			accept: true,
			checkFile: func(t *testing.T, path string) {
				if !strings.HasSuffix(path, ".fish") {
					t.Error("Fish completion file should have .fish extension")
				}
			},
		},
		{
			name:   "powershell save",
			shell:  PowerShell,
			accept: true,
			checkFile: func(t *testing.T, path string) {
				if !strings.HasSuffix(path, ".ps1") {
					t.Error("PowerShell completion file should have .ps1 extension")
				}
			},
		},
		{
			name:   "elvish save",
			shell:  Elvish,
			accept: true,
			checkFile: func(t *testing.T, path string) {
				if !strings.HasSuffix(path, ".elv") {
					t.Error("Elvish completion file should have .elv extension")
				}
			},
		},
		{
			name:    "no script",
			shell:   Bash,
			wantErr: ErrNoScript,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager, err := NewManager(tt.shell, "tool")
			if err != nil {
				t.Fatal(err)
			}

			// Override paths for testing
			manager.Paths.Primary = filepath.Join(tmpDir, tt.name)
			manager.Paths.Fallback = filepath.Join(tmpDir, tt.name+"_fallback")

			if tt.accept {
				if err := manager.Accept(withSubcommand(t)); err != nil {
					t.Fatal(err)
				}
			}

			path, err := manager.SaveCompletion()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SaveCompletion() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr != nil {
				return
			}

			content, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read saved script: %v", err)
			}
			if string(content) != manager.Script() {
				t.Error("saved script differs from the generated one")
			}
			tt.checkFile(t, path)
		})
	}
}
