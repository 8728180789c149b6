package user

import (
	"github.com/raven-themes/raven/internal/actions"
	"github.com/raven-themes/raven/internal/dispatchers"
	"github.com/raven-themes/raven/internal/usage"
)

// Create registers a new account. Mismatched passwords never reach the server.
func Create(args []string, _ *dispatchers.ParsedFlags) error {
	return run(create, args)
}

func create(args []string, deps Deps) error {
	if len(args) < 3 {
		return usage.MissingArgument("name password password")
	}
	name, pass, confirm := args[0], args[1], args[2]

	if pass != confirm {
		return usage.PasswordMismatch()
	}

	if err := deps.Remote.CreateUser(deps.Context(), name, pass); err != nil {
		deps.Logger.Warn("user create %s: %v", name, err)
		return actions.Describe(err)
	}

	deps.Logger.Info("user create %s: ok", name)
	_, _ = deps.Println(deps.Styler.Success("Successfully created user.") +
		" Now, sign in with " + deps.Styler.Info("`raven login [name] [password]`"))
	return nil
}
