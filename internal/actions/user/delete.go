package user

import (
	"github.com/raven-themes/raven/internal/actions"
	"github.com/raven-themes/raven/internal/dispatchers"
	"github.com/raven-themes/raven/internal/usage"
)

// Delete removes the logged-in account and all of its themes from the
// server, then logs out locally.
func Delete(args []string, _ *dispatchers.ParsedFlags) error {
	return run(deleteUser, args)
}

func deleteUser(args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("password")
	}

	info, err := deps.Session.LoadSession()
	if err != nil {
		return actions.Describe(err)
	}

	if err := deps.Remote.DeleteUser(deps.Context(), info, args[0]); err != nil {
		deps.Logger.Warn("user delete %s: %v", info.Name, err)
		return actions.Describe(err)
	}

	_, _ = deps.Println(deps.Styler.Success("Successfully deleted user and all owned themes.") + " Logging out")

	if err := deps.Session.ClearSession(); err != nil {
		return actions.Fail(err, "user deleted but logging out failed: %v", err)
	}

	deps.Logger.Info("user delete %s: ok", info.Name)
	return nil
}
