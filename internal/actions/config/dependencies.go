package config

import (
	"github.com/raven-themes/raven/internal/actions"
	"github.com/raven-themes/raven/internal/app"
	"github.com/raven-themes/raven/internal/domain"
	"github.com/raven-themes/raven/internal/ui/style"
)

type Deps struct {
	Get        func(string) (string, bool)
	GetAll     func() (map[string]string, error)
	Set        func(string, string) error
	Unset      func(string) error
	Overridden func(string) (string, bool)
	Styler     domain.Styler
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
}

func DefaultDeps() (Deps, error) {
	p, err := app.Config()
	if err != nil {
		return Deps{}, err
	}
	w := app.NewWriter(app.Options{}, p)
	return Deps{
		Get:        p.Get,
		GetAll:     p.GetAll,
		Set:        p.Set,
		Unset:      p.Unset,
		Overridden: p.Overridden,
		Styler:     style.NewStyler(),
		Printf:     w.Printf,
		Println:    w.Println,
	}, nil
}

func run(fn func([]string, Deps) error, args []string) error {
	deps, err := DefaultDeps()
	if err != nil {
		return actions.Describe(err)
	}
	return fn(args, deps)
}
