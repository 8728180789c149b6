package user

import (
	"github.com/raven-themes/raven/internal/actions"
	"github.com/raven-themes/raven/internal/dispatchers"
	"github.com/raven-themes/raven/internal/usage"
)

func Login(args []string, _ *dispatchers.ParsedFlags) error {
	return run(login, args)
}

func login(args []string, deps Deps) error {
	if len(args) < 2 {
		return usage.MissingArgument("name password")
	}
	name, pass := args[0], args[1]

	info, err := deps.Remote.Login(deps.Context(), name, pass)
	if err != nil {
		deps.Logger.Warn("login %s: %v", name, err)
		return actions.Describe(err)
	}

	_, _ = deps.Println(deps.Styler.Success("Successfully signed in.") + " Writing login info to disk.")

	if err := deps.Session.SaveSession(info); err != nil {
		return actions.Fail(err, "could not save login info: %v", err)
	}

	deps.Logger.Info("login %s: session saved", info.Name)
	return nil
}

func Logout(args []string, _ *dispatchers.ParsedFlags) error {
	return run(logout, args)
}

func logout(_ []string, deps Deps) error {
	if err := deps.Session.ClearSession(); err != nil {
		return actions.Describe(err)
	}

	deps.Logger.Info("logout: session cleared")
	_, _ = deps.Println(deps.Styler.Success("Successfully logged you out"))
	return nil
}

func Whoami(args []string, _ *dispatchers.ParsedFlags) error {
	return run(whoami, args)
}

func whoami(_ []string, deps Deps) error {
	info, err := deps.Session.LoadSession()
	if err != nil {
		return actions.Describe(err)
	}

	_, _ = deps.Printf("Logged in as %s\n", deps.Styler.Accent(info.Name))
	return nil
}
