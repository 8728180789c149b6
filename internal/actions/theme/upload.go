package theme

import (
	"errors"

	"github.com/raven-themes/raven/internal/actions"
	"github.com/raven-themes/raven/internal/archive"
	"github.com/raven-themes/raven/internal/dispatchers"
	"github.com/raven-themes/raven/internal/domain"
)

// Upload publishes a local theme, creating it on the server or replacing
// the version the user owns.
func Upload(args []string, _ *dispatchers.ParsedFlags) error {
	return run(upload, args, false)
}

func upload(args []string, _ bool, deps Deps) error {
	name, err := themeName(args)
	if err != nil {
		return err
	}

	info, err := deps.Store.LoadSession()
	if err != nil {
		return actions.Describe(err)
	}

	wd, err := deps.Getwd()
	if err != nil {
		return actions.Describe(err)
	}

	archivePath, err := deps.Pack(deps.ThemesDir, name, wd)
	if err != nil {
		if errors.Is(err, archive.ErrNotFound) {
			return actions.Fail(err, "That theme does not exist")
		}
		return actions.Fail(err, "could not write %s: %v", archive.ArchiveName(name), err)
	}
	defer func() {
		if err := deps.Remove(archivePath); err != nil {
			deps.Logger.Warn("upload %s: remove %s: %v", name, archivePath, err)
		}
	}()

	result, err := deps.Remote.UploadTheme(deps.Context(), info.Token, name, archivePath)
	if err != nil {
		deps.Logger.Warn("upload %s: %v", name, err)
		return actions.Describe(err)
	}

	if result == domain.UploadCreated {
		_, _ = deps.Println(deps.Styler.Success("Theme successfully uploaded."))
	} else {
		_, _ = deps.Println(deps.Styler.Success("Theme successfully updated."))
	}
	deps.Logger.Info("upload %s: ok (created=%t)", name, result == domain.UploadCreated)

	meta, err := deps.Store.LoadThemeMetadata(name)
	if err == nil {
		err = deps.Store.SaveThemeMetadata(name, meta)
	}
	if err != nil {
		return actions.Fail(err, "theme uploaded but local metadata could not be saved: %v", err)
	}
	return nil
}

// Unpublish removes a theme the user owns from the server. The local copy
// is kept.
func Unpublish(args []string, _ *dispatchers.ParsedFlags) error {
	return run(unpublish, args, false)
}

func unpublish(args []string, _ bool, deps Deps) error {
	name, err := themeName(args)
	if err != nil {
		return err
	}

	info, err := deps.Store.LoadSession()
	if err != nil {
		return actions.Describe(err)
	}

	if err := deps.Remote.UnpublishTheme(deps.Context(), info.Token, name); err != nil {
		deps.Logger.Warn("unpublish %s: %v", name, err)
		return actions.Describe(err)
	}

	deps.Logger.Info("unpublish %s: ok", name)
	_, _ = deps.Println(deps.Styler.Success("Successfully unpublished theme"))
	return nil
}
