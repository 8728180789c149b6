package actions

import (
	"fmt"

	"github.com/raven-themes/raven/internal/app"
)

type versionDeps struct {
	Println func(a ...any) (n int, err error)
	Version string
	Server  func() (string, error)
}

func defaultVersionDeps() versionDeps {
	return versionDeps{
		Println: fmt.Println,
		Version: app.Version,
		Server:  app.Server,
	}
}
