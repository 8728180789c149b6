package config

import (
	"github.com/raven-themes/raven/internal/actions"
	"github.com/raven-themes/raven/internal/dispatchers"
	"github.com/raven-themes/raven/internal/domain"
)

func List(args []string, _ *dispatchers.ParsedFlags) error {
	return run(list, args)
}

func list(_ []string, deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return actions.Fail(err, "could not read config: %v", err)
	}

	bySection := make(map[string][]domain.ConfigKey)
	for _, key := range domain.VisibleConfigKeys() {
		bySection[key.Section] = append(bySection[key.Section], key)
	}

	first := true
	for _, section := range domain.ConfigSections() {
		keys := bySection[section]
		if len(keys) == 0 {
			continue
		}
		if !first {
			_, _ = deps.Println()
		}
		first = false

		_, _ = deps.Println(deps.Styler.Header(section))
		for _, key := range keys {
			value := configMap[key.Name]
			_, _ = deps.Printf("  %s=%s%s\n", key.Name, value, origin(deps, key, value))
		}
	}

	return nil
}

func origin(deps Deps, key domain.ConfigKey, value string) string {
	if env, ok := deps.Overridden(key.Name); ok {
		return "  " + deps.Styler.Muted("(from $"+env+")")
	}
	if value == key.Default {
		return "  " + deps.Styler.Muted("(default)")
	}
	return ""
}
