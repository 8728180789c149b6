package config

import (
	"github.com/raven-themes/raven/internal/actions"
	"github.com/raven-themes/raven/internal/dispatchers"
	"github.com/raven-themes/raven/internal/domain"
	"github.com/raven-themes/raven/internal/usage"
)

func Unset(args []string, _ *dispatchers.ParsedFlags) error {
	return run(unset, args)
}

func unset(args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]
	def, ok := domain.GetDefaultValue(key)
	if !ok {
		return usage.InvalidConfigKey(key)
	}

	if err := deps.Unset(key); err != nil {
		return actions.Fail(err, "could not write config: %v", err)
	}

	_, _ = deps.Printf("unset %s (default: %s)\n", key, def)
	warnOverride(deps, key)
	return nil
}
