package theme

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/raven-themes/raven/internal/actions"
	"github.com/raven-themes/raven/internal/archive"
	"github.com/raven-themes/raven/internal/dispatchers"
	"github.com/raven-themes/raven/internal/paths"
	"github.com/raven-themes/raven/internal/usage"
)

// Export writes <name>.tar of a local theme into the working directory.
func Export(args []string, _ *dispatchers.ParsedFlags) error {
	return run(export, args, false)
}

func export(args []string, _ bool, deps Deps) error {
	name, err := themeName(args)
	if err != nil {
		return err
	}

	wd, err := deps.Getwd()
	if err != nil {
		return actions.Describe(err)
	}

	archivePath, err := deps.Pack(deps.ThemesDir, name, wd)
	if err != nil {
		if errors.Is(err, archive.ErrNotFound) {
			return actions.Fail(err, "Theme does not exist")
		}
		return actions.Describe(err)
	}

	_, _ = deps.Printf("Wrote theme to %s\n", deps.Styler.Info(filepath.Base(archivePath)))
	return nil
}

// Import unpacks a theme archive into the themes directory. The theme
// name comes from the archive's file name and every entry must sit under it.
func Import(args []string, _ *dispatchers.ParsedFlags) error {
	return run(importArchive, args, false)
}

func importArchive(args []string, _ bool, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("archive")
	}

	name := strings.TrimSuffix(filepath.Base(args[0]), archive.Ext)
	if !paths.ValidThemeName(name) {
		return usage.InvalidThemeName(name)
	}

	if err := deps.Unpack(args[0], deps.ThemesDir, name); err != nil {
		if errors.Is(err, archive.ErrNotFound) {
			return actions.Fail(err, "archive %s does not exist", args[0])
		}
		deps.Logger.Error("import %s: %v", args[0], err)
		return actions.Describe(err)
	}

	hook := hasHook(filepath.Join(deps.ThemesDir, name))
	deps.Logger.Info("import %s: ok (hook=%t)", args[0], hook)
	_, _ = deps.Println(deps.Styler.Success("Imported theme."))
	if hook {
		_, _ = deps.Println(deps.Styler.Warning(hookWarning))
	}
	return nil
}

// List prints the installed themes with their local metadata.
func List(args []string, _ *dispatchers.ParsedFlags) error {
	return run(list, args, false)
}

func list(_ []string, _ bool, deps Deps) error {
	themes, err := installedThemes(deps.ThemesDir, deps.Store)
	if err != nil {
		return actions.Describe(err)
	}

	if len(themes) == 0 {
		_, _ = deps.Println("No themes installed. Download one with " + deps.Styler.Info("`raven theme download <name>`"))
		return nil
	}

	_, _ = deps.Println(deps.Styler.Header("Installed themes"))
	for _, t := range themes {
		marker := "  "
		if t.Hook {
			marker = deps.Styler.Warning("! ")
		}

		desc := t.Meta.Description
		if desc == "" {
			desc = deps.Styler.Muted("no description")
		}
		_, _ = deps.Printf("%s%s  %s\n", marker, deps.Styler.Accent(t.Name), desc)

		if t.Meta.HasScreenshot() {
			_, _ = deps.Printf("    %s\n", deps.Styler.Muted(t.Meta.Screenshot))
		}
	}

	_, _ = deps.Println()
	_, _ = deps.Println(deps.Styler.Muted("! = runs a script when loaded"))
	return nil
}

// Remove deletes a local theme and its metadata row.
func Remove(args []string, flags *dispatchers.ParsedFlags) error {
	return run(remove, args, flags.HasAny("--force", "-f"))
}

func remove(args []string, force bool, deps Deps) error {
	name, err := themeName(args)
	if err != nil {
		return err
	}

	dir := filepath.Join(deps.ThemesDir, name)
	if !dirExists(dir) {
		return actions.Fail(archive.ErrNotFound, "That theme does not exist")
	}

	if !force && !confirm(deps, "Remove theme "+name+"?") {
		_, _ = deps.Println("Aborted.")
		return nil
	}

	if err := deps.RemoveAll(dir); err != nil {
		return actions.Describe(err)
	}
	if err := deps.Store.DeleteThemeMetadata(name); err != nil {
		return actions.Describe(err)
	}

	deps.Logger.Info("remove %s: ok", name)
	_, _ = deps.Printf("Removed theme %s\n", deps.Styler.Accent(name))
	return nil
}
