package config

import (
	"github.com/raven-themes/raven/internal/dispatchers"
	"github.com/raven-themes/raven/internal/domain"
	"github.com/raven-themes/raven/internal/usage"
)

func Get(args []string, _ *dispatchers.ParsedFlags) error {
	return run(get, args)
}

func get(args []string, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	value, found := deps.Get(key)
	if !found {
		return usage.InvalidConfigKey(key)
	}

	_, _ = deps.Println(value)
	return nil
}
