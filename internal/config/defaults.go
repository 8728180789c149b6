package config

import (
	"github.com/raven-themes/raven/internal/domain"
	"github.com/raven-themes/raven/internal/log"
)

// Defaults returns the built-in value of every known key.
func Defaults() map[string]string {
	defaults := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		defaults[key.Name] = key.Default
	}
	return defaults
}

// Get returns the value of key from the file at path, falling back to the
// built-in default. The bool is false when neither has the key.
func Get(path, key string) (string, bool) {
	if cfg, err := load(path); err == nil {
		if value, ok := cfg[key]; ok {
			return value, true
		}
	}
	return domain.GetDefaultValue(key)
}

// GetAll returns the defaults overlaid with the file at path. A file that
// cannot be read or parsed yields the defaults alone.
func GetAll(path string) (map[string]string, error) {
	result := Defaults()

	cfg, err := load(path)
	if err != nil {
		log.Warn("config: using defaults: %v", err)
		return result, nil
	}
	for key, value := range cfg {
		result[key] = value
	}
	return result, nil
}

func load(path string) (map[string]string, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
