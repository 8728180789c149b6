package completions

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/raven-themes/raven/internal/dispatchers"
)

// Shell is a shell raven can generate completions for.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells lists the supported shells.
var Shells = []Shell{ShellBash, ShellZsh, ShellFish}

// Valid reports whether s is supported.
func (s Shell) Valid() bool {
	for _, known := range Shells {
		if s == known {
			return true
		}
	}
	return false
}

// RunningShell guesses the user's shell from $SHELL.
func RunningShell() Shell {
	return Shell(filepath.Base(os.Getenv("SHELL")))
}

// PrintCompletions writes the completion script for shell to w.
func PrintCompletions(w io.Writer, root *dispatchers.DispatchNode, shell Shell) error {
	if root == nil {
		return fmt.Errorf("command tree not registered")
	}

	commands := ExtractCommands(root)
	script := generateScript(shell, commands)
	if script == "" {
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	_, err := fmt.Fprint(w, script)
	return err
}

func generateScript(shell Shell, commands []CommandInfo) string {
	switch shell {
	case ShellBash:
		return GenerateBash(commands)
	case ShellZsh:
		return GenerateZsh(commands)
	case ShellFish:
		return GenerateFish(commands)
	default:
		return ""
	}
}

// SourceInstructions returns the line that loads completions for shell.
func SourceInstructions(shell Shell, bin string) string {
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completions %s --script)"`, bin, shell)
	case ShellFish:
		return fmt.Sprintf(`%s completions fish --script | source`, bin)
	default:
		return ""
	}
}

// RcFile returns the rc file path for the given shell
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}
