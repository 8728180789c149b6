package theme

import (
	"io"
	"os"
	"path/filepath"

	"github.com/raven-themes/raven/internal/actions"
	"github.com/raven-themes/raven/internal/archive"
	"github.com/raven-themes/raven/internal/dispatchers"
)

const (
	installWarning = "Warning: When you install themes from the online repo, there is some danger. " +
		"Please evaluate the theme files before loading the theme, and if you find any malicious theme, " +
		"please report it on the theme's page at http://demenses.net and it will be removed."
	hookWarning   = "This theme should be scrutinized more carefully as it includes a bash script which will be run automatically."
	thanksNote    = "Thank you for helping keep the repo clean!"
	flaggedNotice = "This theme has been flagged by other users as possibly malicious."
)

// Download installs a published theme. A flagged theme asks for
// confirmation unless --force is given.
func Download(args []string, flags *dispatchers.ParsedFlags) error {
	return run(download, args, flags.HasAny("--force", "-f"))
}

func download(args []string, force bool, deps Deps) error {
	name, err := themeName(args)
	if err != nil {
		return err
	}

	dl, err := deps.Remote.DownloadTheme(deps.Context(), name)
	if err != nil {
		deps.Logger.Warn("download %s: %v", name, err)
		return actions.Describe(err)
	}

	wd, err := deps.Getwd()
	if err != nil {
		_ = dl.Body.Close()
		return actions.Describe(err)
	}

	archivePath := filepath.Join(wd, archive.ArchiveName(name))
	if err := saveArchive(archivePath, dl.Body); err != nil {
		_ = deps.Remove(archivePath)
		return actions.Describe(err)
	}
	_, _ = deps.Println("Downloaded theme")

	if dl.Flagged {
		deps.Logger.Warn("download %s: theme is flagged (force=%t)", name, force)
		if force {
			_, _ = deps.Println(deps.Styler.Warning(flaggedNotice + " Installing anyway because of --force."))
		} else {
			_, _ = deps.Println(deps.Styler.Warning(flaggedNotice))
			if !confirm(deps, "continue?") {
				_ = deps.Remove(archivePath)
				_, _ = deps.Println("Aborted. Removed archive.")
				return nil
			}
		}
	}

	if err := deps.Unpack(archivePath, deps.ThemesDir, name); err != nil {
		_ = deps.Remove(archivePath)
		deps.Logger.Error("download %s: unpack: %v", name, err)
		return actions.Describe(err)
	}
	_, _ = deps.Println("Imported theme. Removing archive.")
	if err := deps.Remove(archivePath); err != nil {
		deps.Logger.Warn("download %s: remove %s: %v", name, archivePath, err)
	}

	if err := syncMetadata(name, deps); err != nil {
		return err
	}

	hook := hasHook(filepath.Join(deps.ThemesDir, name))
	deps.Logger.Info("download %s: installed (hook=%t)", name, hook)
	printInstallWarning(deps, hook, force)
	return nil
}

func saveArchive(path string, body io.ReadCloser) error {
	defer body.Close()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// syncMetadata merges the published metadata into the local row. A theme
// without published metadata keeps what is stored locally.
func syncMetadata(name string, deps Deps) error {
	local, err := deps.Store.LoadThemeMetadata(name)
	if err != nil {
		return actions.Describe(err)
	}

	remoteMeta, err := deps.Remote.GetMetadata(deps.Context(), name)
	if err != nil {
		deps.Logger.Warn("download %s: metadata: %v", name, err)
		_, _ = deps.Println(deps.Styler.Muted("Could not fetch theme metadata: " + err.Error()))
	} else {
		local = local.Merge(remoteMeta)
	}

	if err := deps.Store.SaveThemeMetadata(name, local); err != nil {
		return actions.Describe(err)
	}
	return nil
}

// printInstallWarning prints the safety notice after an install. --force
// drops the standard notice but never the hook warning.
func printInstallWarning(deps Deps, hook, force bool) {
	if force {
		if hook {
			_, _ = deps.Println(deps.Styler.Warning(hookWarning))
		}
		return
	}

	_, _ = deps.Println(deps.Styler.Warning(installWarning))
	if hook {
		_, _ = deps.Println(deps.Styler.Warning(hookWarning))
	}
	_, _ = deps.Println(thanksNote)
}
