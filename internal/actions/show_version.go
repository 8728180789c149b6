package actions

import "github.com/raven-themes/raven/internal/dispatchers"

// ShowVersion prints the client version and the server it is configured for.
func ShowVersion(args []string, flags *dispatchers.ParsedFlags) error {
	return showVersion(args, flags, defaultVersionDeps())
}

func showVersion(_ []string, _ *dispatchers.ParsedFlags, deps versionDeps) error {
	_, _ = deps.Println("raven " + deps.Version)

	server, err := deps.Server()
	if err != nil || server == "" {
		return nil
	}
	_, _ = deps.Println("server: " + server)
	return nil
}
