package completions

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/raven-themes/raven/internal/completions"
	"github.com/raven-themes/raven/internal/dispatchers"
	"github.com/raven-themes/raven/internal/usage"
)

type Deps struct {
	Root    *dispatchers.DispatchNode
	Stdout  io.Writer
	Shell   func() completions.Shell
	Binary  func() string
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
}

func DefaultDeps(root *dispatchers.DispatchNode) Deps {
	return Deps{
		Root:    root,
		Stdout:  os.Stdout,
		Shell:   completions.RunningShell,
		Binary:  binaryName,
		Printf:  fmt.Printf,
		Println: fmt.Println,
	}
}

// New returns the completions action for the tree rooted at root.
func New(root *dispatchers.DispatchNode) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		return completionsCmd(args, flags, DefaultDeps(root))
	}
}

func completionsCmd(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	var shell completions.Shell
	if len(args) > 0 {
		shell = completions.Shell(args[0])
	} else {
		shell = deps.Shell()
	}

	if !shell.Valid() {
		if len(args) == 0 {
			return &usage.Error{
				Kind:    usage.ErrMissingArgument,
				Message: "raven: could not detect shell, specify one: raven completions <bash|zsh|fish>",
			}
		}
		return usage.InvalidFlag(fmt.Sprintf("unsupported shell: %s (use bash, zsh, or fish)", shell))
	}

	if flags.Has("--script") {
		return completions.PrintCompletions(deps.Stdout, deps.Root, shell)
	}

	printInstructions(shell, deps)
	return nil
}

func printInstructions(shell completions.Shell, deps Deps) {
	_, _ = deps.Printf("To enable %s completions, add to %s:\n", shell, completions.RcFile(shell))
	_, _ = deps.Printf("   %s\n", completions.SourceInstructions(shell, deps.Binary()))
	_, _ = deps.Println()
	_, _ = deps.Println("Then restart your shell or run: exec $SHELL")
}

func binaryName() string {
	if exe, err := os.Executable(); err == nil {
		return filepath.Base(exe)
	}
	return "raven"
}
