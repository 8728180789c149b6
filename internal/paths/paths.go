package paths

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const (
	appDirName = "raven"

	// RootEnv overrides the configuration root (useful for tests and sandboxes).
	RootEnv = "RAVEN_HOME"

	themesDirName   = "themes"
	sessionFileName = "ravenserver.json"
	configFileName  = "ravenrc"
	dbFileName      = "raven.db"
	logFileName     = "raven.log"
)

// ErrNoHome is returned when no configuration root can be resolved.
var ErrNoHome = errors.New("paths: cannot resolve configuration directory")

// Layout is the on-disk layout of the client's local state.
// Every component receives the layout it should use instead of
// resolving the home directory on its own.
type Layout struct {
	Root string
}

// New returns a layout rooted at root.
func New(root string) Layout {
	return Layout{Root: filepath.Clean(root)}
}

// Default resolves the layout for the current user: $RAVEN_HOME when set,
// otherwise ~/.config/raven on every platform.
func Default() (Layout, error) {
	if root := strings.TrimSpace(os.Getenv(RootEnv)); root != "" {
		return New(root), nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return Layout{}, ErrNoHome
	}

	return New(filepath.Join(home, ".config", appDirName)), nil
}

// Ensure creates the root and themes directories with restrictive permissions.
func (l Layout) Ensure() error {
	if l.Root == "" {
		return ErrNoHome
	}
	if err := os.MkdirAll(l.Root, 0700); err != nil {
		return err
	}
	return os.MkdirAll(l.ThemesDir(), 0755)
}

// ThemesDir holds one subdirectory per installed theme.
func (l Layout) ThemesDir() string {
	return filepath.Join(l.Root, themesDirName)
}

// ThemeDir returns the directory of a single theme.
func (l Layout) ThemeDir(name string) string {
	return filepath.Join(l.ThemesDir(), name)
}

// SessionFile holds the serialized user session.
func (l Layout) SessionFile() string {
	return filepath.Join(l.Root, sessionFileName)
}

// ConfigFile holds the key=value configuration.
func (l Layout) ConfigFile() string {
	return filepath.Join(l.Root, configFileName)
}

// DBFile is the SQLite database with local theme metadata.
func (l Layout) DBFile() string {
	return filepath.Join(l.Root, dbFileName)
}

// LogFile is the application log.
func (l Layout) LogFile() string {
	return filepath.Join(l.Root, logFileName)
}

// ValidThemeName reports whether name can be used as a single path element
// under the themes directory.
func ValidThemeName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}
