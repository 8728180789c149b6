package theme

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raven-themes/raven/internal/actions"
	"github.com/raven-themes/raven/internal/app"
	"github.com/raven-themes/raven/internal/archive"
	"github.com/raven-themes/raven/internal/domain"
	"github.com/raven-themes/raven/internal/ui"
)

type Deps struct {
	Remote    domain.ThemeService
	Store     domain.ThemeStore
	Logger    domain.Logger
	Styler    domain.Styler
	Context   func() context.Context
	ThemesDir string

	Getwd     func() (string, error)
	Pack      func(themesDir, themeName, outDir string) (string, error)
	Unpack    func(archivePath, destRoot, theme string) error
	Remove    func(string) error
	RemoveAll func(string) error

	Scanln      func(...any) (int, error)
	Interactive func() bool
	RunProgram  func(tea.Model) (tea.Model, error)
	Printf      func(string, ...any) (int, error)
	Println     func(...any) (int, error)
}

func DefaultDeps() (Deps, error) {
	a, err := app.Current()
	if err != nil {
		return Deps{}, err
	}
	return Deps{
		Remote:      a.Remote,
		Store:       a.Store,
		Logger:      a.Logger,
		Styler:      a.Styler,
		Context:     context.Background,
		ThemesDir:   a.ThemesDir,
		Getwd:       os.Getwd,
		Pack:        archive.Pack,
		Unpack:      archive.Unpack,
		Remove:      os.Remove,
		RemoveAll:   os.RemoveAll,
		Scanln:      fmt.Scanln,
		Interactive: ui.Interactive,
		RunProgram:  runAltScreen,
		Printf:      a.Output.Printf,
		Println:     a.Output.Println,
	}, nil
}

func runAltScreen(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}

type action func(args []string, force bool, deps Deps) error

func run(fn action, args []string, force bool) error {
	deps, err := DefaultDeps()
	if err != nil {
		return actions.Describe(err)
	}
	return fn(args, force, deps)
}
