package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in `raven config list`
	Env         string // Environment variable that overrides the file value
	Hidden      bool   // Hidden keys are not shown in help or config list
}

// DefaultHost is the theme server used when no host is configured.
const DefaultHost = "https://demenses.net"

// ConfigKeys defines all available configuration keys.
// Order determines display order in `raven config list`.
var ConfigKeys = []ConfigKey{
	// Server
	{
		Name:        "host",
		Default:     DefaultHost,
		Description: "Base URL of the theme server",
		Section:     "Server",
		Env:         "RAVEN_HOST",
	},
	{
		Name:        "timeout_sec",
		Default:     "30",
		Description: "Seconds to wait for a server response",
		Section:     "Server",
		Env:         "RAVEN_TIMEOUT_SEC",
	},
	// Display
	{
		Name:        "pager",
		Default:     "less -FRSX",
		Description: "Pager command for long output",
		Section:     "Display",
	},
	{
		Name:        "color_theme",
		Default:     "default",
		Description: "Color theme: default, mono, ember (append -dark or -light to pin a variant)",
		Section:     "Display",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "info",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
		Env:         "RAVEN_LOG_LEVEL",
	},
}

var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// GetDefaultValue returns the default value for a config key.
func GetDefaultValue(name string) (string, bool) {
	if key, ok := configKeyMap[name]; ok {
		return key.Default, true
	}
	return "", false
}

// VisibleConfigKeys returns all non-hidden configuration keys.
func VisibleConfigKeys() []ConfigKey {
	var visible []ConfigKey
	for _, key := range ConfigKeys {
		if !key.Hidden {
			visible = append(visible, key)
		}
	}
	return visible
}

// ConfigSections returns the ordered list of section names.
func ConfigSections() []string {
	return []string{"Server", "Display", "Logging"}
}
