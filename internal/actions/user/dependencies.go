package user

import (
	"context"

	"github.com/raven-themes/raven/internal/actions"
	"github.com/raven-themes/raven/internal/app"
	"github.com/raven-themes/raven/internal/domain"
)

type Deps struct {
	Remote  domain.ThemeService
	Session domain.SessionStore
	Logger  domain.Logger
	Styler  domain.Styler
	Context func() context.Context
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
}

func DefaultDeps() (Deps, error) {
	a, err := app.Current()
	if err != nil {
		return Deps{}, err
	}
	return Deps{
		Remote:  a.Remote,
		Session: a.Store,
		Logger:  a.Logger,
		Styler:  a.Styler,
		Context: context.Background,
		Printf:  a.Output.Printf,
		Println: a.Output.Println,
	}, nil
}

// run resolves the default dependencies and reports failures the way every
// user command does.
func run(fn func([]string, Deps) error, args []string) error {
	deps, err := DefaultDeps()
	if err != nil {
		return actions.Describe(err)
	}
	return fn(args, deps)
}
