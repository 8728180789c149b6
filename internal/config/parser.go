package config

import (
	"fmt"
	"strings"
)

const bom = "\uFEFF"

// Parse turns key=value lines into a map. Blank lines and lines starting
// with # are skipped. A value may be wrapped in double quotes and may be
// followed by an inline comment introduced by " #".
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, bom)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, rawValue, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: expected key=value", i+1)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		value, _ := splitValue(rawValue)
		cfg[key] = value
	}

	return cfg, nil
}

// splitValue separates a raw value from its trailing inline comment and
// strips surrounding quotes.
func splitValue(raw string) (value, comment string) {
	raw = strings.TrimSpace(raw)

	if strings.HasPrefix(raw, `"`) {
		if end := strings.Index(raw[1:], `"`); end >= 0 {
			value = raw[1 : end+1]
			comment = strings.TrimSpace(raw[end+2:])
			return value, comment
		}
	}

	if idx := strings.Index(raw, " #"); idx >= 0 {
		return strings.TrimSpace(raw[:idx]), strings.TrimSpace(raw[idx+1:])
	}
	return raw, ""
}

// formatValue quotes values that would not survive a round trip unquoted.
func formatValue(value string) string {
	if value != strings.TrimSpace(value) || strings.ContainsAny(value, " \t") || strings.HasPrefix(value, `"`) {
		return `"` + value + `"`
	}
	return value
}
