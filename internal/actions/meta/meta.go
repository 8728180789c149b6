package meta

import (
	"github.com/raven-themes/raven/internal/actions"
	"github.com/raven-themes/raven/internal/dispatchers"
	"github.com/raven-themes/raven/internal/domain"
	"github.com/raven-themes/raven/internal/paths"
	"github.com/raven-themes/raven/internal/usage"
)

func themeName(args []string) (string, error) {
	if len(args) < 1 {
		return "", usage.MissingArgument("name")
	}
	if !paths.ValidThemeName(args[0]) {
		return "", usage.InvalidThemeName(args[0])
	}
	return args[0], nil
}

func printMetadata(deps Deps, name string, m domain.ThemeMetadata) {
	screenshot := m.Screenshot
	if !m.HasScreenshot() {
		screenshot = deps.Styler.Muted(domain.DefaultScreenshot)
	}
	description := m.Description
	if description == "" {
		description = deps.Styler.Muted("none")
	}

	_, _ = deps.Println(deps.Styler.Accent(name))
	_, _ = deps.Printf("  screenshot:  %s\n", screenshot)
	_, _ = deps.Printf("  description: %s\n", description)
}

// Get prints the published metadata of a theme. Local state is untouched.
func Get(args []string, _ *dispatchers.ParsedFlags) error {
	return run(get, args)
}

func get(args []string, deps Deps) error {
	name, err := themeName(args)
	if err != nil {
		return err
	}

	remote, err := deps.Remote.GetMetadata(deps.Context(), name)
	if err != nil {
		deps.Logger.Warn("meta get %s: %v", name, err)
		return actions.Describe(err)
	}

	printMetadata(deps, name, domain.ThemeMetadata{}.Merge(remote))
	return nil
}

// Set publishes one metadata field of a theme the user owns and mirrors it
// locally once the server accepts it.
func Set(args []string, _ *dispatchers.ParsedFlags) error {
	return run(set, args)
}

func set(args []string, deps Deps) error {
	if len(args) < 3 {
		return usage.MissingArgument("name kind value")
	}
	name, err := themeName(args)
	if err != nil {
		return err
	}
	value := args[2]

	kind, err := domain.ParseMetadataKind(args[1])
	if err != nil {
		valid := make([]string, len(domain.MetadataKinds))
		for i, k := range domain.MetadataKinds {
			valid[i] = string(k)
		}
		return usage.InvalidMetadataKind(args[1], valid)
	}

	info, err := deps.Store.LoadSession()
	if err != nil {
		return actions.Describe(err)
	}

	if err := deps.Remote.PublishMetadata(deps.Context(), info.Token, name, kind, value); err != nil {
		deps.Logger.Warn("meta set %s %s: %v", name, kind, err)
		return actions.Describe(err)
	}
	_, _ = deps.Println(deps.Styler.Success("Successfully updated theme metadata"))

	local, err := deps.Store.LoadThemeMetadata(name)
	if err == nil {
		err = deps.Store.SaveThemeMetadata(name, kind.Apply(local, value))
	}
	if err != nil {
		return actions.Fail(err, "metadata published but the local copy could not be saved: %v", err)
	}

	deps.Logger.Info("meta set %s %s: ok", name, kind)
	return nil
}

// Show prints what is stored locally about a theme.
func Show(args []string, _ *dispatchers.ParsedFlags) error {
	return run(show, args)
}

func show(args []string, deps Deps) error {
	name, err := themeName(args)
	if err != nil {
		return err
	}

	local, err := deps.Store.LoadThemeMetadata(name)
	if err != nil {
		return actions.Describe(err)
	}

	printMetadata(deps, name, local)
	return nil
}
