package theme

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/raven-themes/raven/internal/domain"
	"github.com/raven-themes/raven/internal/paths"
	"github.com/raven-themes/raven/internal/usage"
)

// themeName validates the first argument as a single path element.
func themeName(args []string) (string, error) {
	if len(args) < 1 {
		return "", usage.MissingArgument("name")
	}
	name := args[0]
	if !paths.ValidThemeName(name) {
		return "", usage.InvalidThemeName(name)
	}
	return name, nil
}

// confirm prints question and reports whether the answer was y or yes.
// A failed read counts as no.
func confirm(deps Deps, question string) bool {
	_, _ = deps.Printf("%s [y/N] ", question)

	var answer string
	if _, err := deps.Scanln(&answer); err != nil {
		_, _ = deps.Println()
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// hasHook reports whether the theme ships a file the window manager runs
// on load.
func hasHook(themeDir string) bool {
	for _, name := range domain.HookFiles {
		if _, err := os.Stat(filepath.Join(themeDir, name)); err == nil {
			return true
		}
	}
	return false
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// localTheme is an installed theme with what is known about it locally.
type localTheme struct {
	Name string
	Dir  string
	Hook bool
	Meta domain.ThemeMetadata
}

// installedThemes lists the theme directories under dir sorted by name.
// Themes without a metadata row get the defaults.
func installedThemes(dir string, store domain.MetadataStore) ([]localTheme, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	known, err := store.ListThemeMetadata()
	if err != nil {
		return nil, err
	}

	var themes []localTheme
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		meta, ok := known[e.Name()]
		if !ok {
			meta = domain.DefaultThemeMetadata()
		}
		themeDir := filepath.Join(dir, e.Name())
		themes = append(themes, localTheme{
			Name: e.Name(),
			Dir:  themeDir,
			Hook: hasHook(themeDir),
			Meta: meta,
		})
	}

	sort.Slice(themes, func(i, j int) bool { return themes[i].Name < themes[j].Name })
	return themes, nil
}
