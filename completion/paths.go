package completion

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

func ensurePermission(path string, perm os.FileMode) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if runtime.GOOS == "windows" {
		return nil
	}

	actualPerm := info.Mode().Perm()
	if actualPerm != perm {
		if err := os.Chmod(path, perm); err != nil {
			return fmt.Errorf("failed to set permissions on %s from %o to %o: %w",
				path, actualPerm, perm, err)
		}
	}

	return nil
}

func isPowerShellCore() bool {
	_, err := exec.LookPath("pwsh")
	return err == nil
}

func getWindowsCompletionPaths(home string, shell Shell) (CompletionPaths, error) {
	switch shell {
	case PowerShell:
		if isPowerShellCore() {
			return CompletionPaths{
				Primary:   filepath.Join(home, "Documents", "PowerShell", "Completions"),
				Fallback:  filepath.Join(home, ".config", "powershell", "Completions"),
				Extension: ".ps1",
				Comment:   "PowerShell Core user completions directory",
			}, nil
		}
		return CompletionPaths{
			Primary:   filepath.Join(home, "Documents", "WindowsPowerShell", "Completions"),
			Fallback:  filepath.Join(home, ".config", "WindowsPowerShell", "Completions"),
			Extension: ".ps1",
			Comment:   "Windows PowerShell user completions directory",
		}, nil

	case Bash:
		return CompletionPaths{
			Primary:   filepath.Join(home, ".local", "share", "bash-completion", "completions"),
			Fallback:  filepath.Join(home, ".bash_completion.d"),
			Extension: "",
			Comment:   "Git Bash user completions directory",
		}, nil

	case Zsh:
		return CompletionPaths{
			Primary:   filepath.Join(home, ".zsh", "completion"),
			Fallback:  filepath.Join(home, ".zfunc"),
			Extension: "",
			Comment:   "Zsh user completions directory (WSL/Cygwin)",
		}, nil

	case Fish:
		return CompletionPaths{
			Primary:   filepath.Join(home, ".config", "fish", "completions"),
			Fallback:  filepath.Join(home, ".local", "share", "fish", "completions"),
			Extension: ".fish",
			Comment:   "Fish user completions directory",
		}, nil

	case Elvish:
		return CompletionPaths{
			Primary:   filepath.Join(home, "AppData", "Roaming", "elvish", "lib"),
			Fallback:  filepath.Join(home, ".config", "elvish", "lib"),
			Extension: ".elv",
			Comment:   "Elvish module directory",
		}, nil

	default:
		return CompletionPaths{}, fmt.Errorf("%w: %s", ErrUnsupportedShell, shell.Name())
	}
}

func getDarwinCompletionPaths(home string, shell Shell) (CompletionPaths, error) {
	switch shell {
	case Bash:
		return CompletionPaths{
			Primary:   filepath.Join(home, ".local", "share", "bash-completion", "completions"),
			Fallback:  filepath.Join(home, ".bash_completion.d"),
			Extension: "",
			Comment:   "User-local bash completions, compatible with bash-completion@2",
		}, nil

	case Zsh:
		return CompletionPaths{
			Primary:   filepath.Join(home, ".zsh", "completion"),
			Fallback:  filepath.Join(home, ".zfunc"),
			Extension: "",
			Comment:   "User-local zsh completions directory",
		}, nil

	case Fish:
		return CompletionPaths{
			Primary:   filepath.Join(home, ".config", "fish", "completions"),
			Fallback:  filepath.Join(home, ".local", "share", "fish", "completions"),
			Extension: ".fish",
			Comment:   "Fish user completions directory",
		}, nil

	case PowerShell:
		return CompletionPaths{
			Primary:   filepath.Join(home, "Library", "PowerShell", "Completions"),
			Fallback:  filepath.Join(home, ".config", "powershell", "Completions"),
			Extension: ".ps1",
			Comment:   "PowerShell Core user completions directory",
		}, nil

	case Elvish:
		return CompletionPaths{
			Primary:   filepath.Join(home, ".config", "elvish", "lib"),
			Fallback:  filepath.Join(home, ".local", "share", "elvish", "lib"),
			Extension: ".elv",
			Comment:   "Elvish user module directory, load with use <name>",
		}, nil

	default:
		return CompletionPaths{}, fmt.Errorf("%w: %s", ErrUnsupportedShell, shell.Name())
	}
}

func getLinuxCompletionPaths(home string, shell Shell) (CompletionPaths, error) {
	switch shell {
	case Bash:
		return CompletionPaths{
			Primary:   filepath.Join(home, ".local", "share", "bash-completion", "completions"),
			Fallback:  filepath.Join(home, ".bash_completion.d"),
			Extension: "",
			Comment:   "XDG-compatible user-local bash completions directory",
		}, nil

	case Zsh:
		return CompletionPaths{
			Primary:   filepath.Join(home, ".zsh", "completion"),
			Fallback:  filepath.Join(home, ".zfunc"),
			Extension: "",
			Comment:   "User-local zsh completions directory",
		}, nil

	case Fish:
		return CompletionPaths{
			Primary:   filepath.Join(home, ".config", "fish", "completions"),
			Fallback:  filepath.Join(home, ".local", "share", "fish", "completions"),
			Extension: ".fish",
			Comment:   "Fish user completions directory",
		}, nil

	case PowerShell:
		return CompletionPaths{
			Primary:   filepath.Join(home, ".config", "powershell", "Completions"),
			Fallback:  filepath.Join(home, ".local", "share", "powershell", "Completions"),
			Extension: ".ps1",
			Comment:   "PowerShell Core user completions directory",
		}, nil

	case Elvish:
		return CompletionPaths{
			Primary:   filepath.Join(home, ".config", "elvish", "lib"),
			Fallback:  filepath.Join(home, ".local", "share", "elvish", "lib"),
			Extension: ".elv",
			Comment:   "Elvish user module directory, load with use <name>",
		}, nil

	default:
		return CompletionPaths{}, fmt.Errorf("%w: %s", ErrUnsupportedShell, shell.Name())
	}
}

// GetCompletionPaths returns the per-user completion directories of shell on the current OS
func GetCompletionPaths(shell Shell) (CompletionPaths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return CompletionPaths{}, fmt.Errorf("couldn't get user home directory: %w", err)
	}

	switch runtime.GOOS {
	case "windows":
		return getWindowsCompletionPaths(home, shell)
	case "darwin":
		return getDarwinCompletionPaths(home, shell)
	default:
		return getLinuxCompletionPaths(home, shell)
	}
}

// EnsureCompletionPath creates the primary directory of paths, or the fallback when the primary
// cannot be given the expected permissions, and returns the directory to use
func EnsureCompletionPath(paths CompletionPaths) (string, error) {
	perm := os.FileMode(0755)
	err := os.MkdirAll(paths.Primary, perm)
	if err == nil {
		err = ensurePermission(paths.Primary, perm)
	}
	if err == nil {
		return paths.Primary, nil
	}

	if paths.Fallback != "" {
		if err := os.MkdirAll(paths.Fallback, perm); err != nil {
			return "", fmt.Errorf("failed to create fallback completion directory: %w", err)
		}
		return paths.Fallback, ensurePermission(paths.Fallback, perm)
	}

	return "", fmt.Errorf("failed to create completion directories: %w", err)
}

// GetCompletionFilePath returns where the completion script of programName is installed
func GetCompletionFilePath(dir string, shell Shell, programName string) string {
	conventions := shell.FileConventions()
	return filepath.Join(dir, conventions.Prefix+filepath.Base(programName)+conventions.Extension)
}

// WriteFileAtomic writes data to a temporary file next to path and renames it into place,
// so readers never observe a partially written script
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err = ensurePermission(tmpName, perm); err != nil {
		return err
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move completion script into place: %w", err)
	}

	return nil
}
