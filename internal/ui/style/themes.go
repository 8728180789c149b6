package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds the colors of one theme.
// Values are ANSI color numbers (0-255) or "bold".
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
	Accent  string
}

// BaseThemeNames lists the theme bases accepted by color_theme.
var BaseThemeNames = []string{"default", "mono", "ember"}

// Themes contains the built-in color themes. Dark variants use bright
// colors, light variants use dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",
		Warning: "11",
		Error:   "9",
		Info:    "14",
		Muted:   "245",
		Header:  "bold",
		Accent:  "13",
	},
	"default-light": {
		Success: "28",
		Warning: "130",
		Error:   "124",
		Info:    "27",
		Muted:   "243",
		Header:  "bold",
		Accent:  "90",
	},
	"mono-dark": {
		Success: "bold",
		Warning: "bold",
		Error:   "bold",
		Info:    "252",
		Muted:   "242",
		Header:  "bold",
		Accent:  "255",
	},
	"mono-light": {
		Success: "bold",
		Warning: "bold",
		Error:   "bold",
		Info:    "237",
		Muted:   "245",
		Header:  "bold",
		Accent:  "232",
	},
	"ember-dark": {
		Success: "150",
		Warning: "214",
		Error:   "203",
		Info:    "180",
		Muted:   "244",
		Header:  "bold",
		Accent:  "208",
	},
	"ember-light": {
		Success: "64",
		Warning: "166",
		Error:   "160",
		Info:    "94",
		Muted:   "243",
		Header:  "bold",
		Accent:  "130",
	},
}

// isDarkBackground is replaced in tests.
var isDarkBackground = termenv.HasDarkBackground

// ResolveThemeName appends -dark or -light to a base name based on the
// terminal background. Explicit variants pass through.
func ResolveThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if name == "" {
		name = "default"
	}
	if isDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig picks the theme from RAVEN_COLOR_THEME, then the
// color_theme config key, then the default. Unknown names fall back to
// default-dark.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	name := "default"
	if env := os.Getenv("RAVEN_COLOR_THEME"); env != "" {
		name = env
	} else if v, ok := cfg["color_theme"]; ok && v != "" {
		name = v
	}

	if theme, ok := Themes[ResolveThemeName(name)]; ok {
		return theme
	}
	return Themes["default-dark"]
}
