package config

import (
	"github.com/raven-themes/raven/internal/actions"
	"github.com/raven-themes/raven/internal/dispatchers"
	"github.com/raven-themes/raven/internal/domain"
	"github.com/raven-themes/raven/internal/usage"
)

func Set(args []string, _ *dispatchers.ParsedFlags) error {
	return run(set, args)
}

func set(args []string, deps Deps) error {
	if len(args) < 2 {
		return usage.MissingArgument("key value")
	}

	key := args[0]
	value := args[1]
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	if err := deps.Set(key, value); err != nil {
		return actions.Fail(err, "could not write config: %v", err)
	}

	_, _ = deps.Printf("set %s=%s\n", key, value)
	warnOverride(deps, key)
	return nil
}

// warnOverride tells the user when an environment variable hides the file value.
func warnOverride(deps Deps, key string) {
	if env, ok := deps.Overridden(key); ok {
		_, _ = deps.Println(deps.Styler.Warning("note: $" + env + " is set and takes precedence"))
	}
}
