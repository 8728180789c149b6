package config

import "strings"

// Set replaces the value of key in lines or appends it. Inline comments on
// the replaced line are kept. The bool reports whether an existing line was
// updated.
func Set(lines []string, key, value string) ([]string, bool) {
	for i, line := range lines {
		lineKey, rawValue, ok := splitLine(line)
		if !ok || lineKey != key {
			continue
		}

		updated := key + "=" + formatValue(value)
		if _, comment := splitValue(rawValue); comment != "" {
			updated += " " + comment
		}
		lines[i] = updated
		return lines, true
	}

	return append(lines, key+"="+formatValue(value)), false
}

// Unset drops every line assigning key. The bool reports whether any was found.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if lineKey, _, ok := splitLine(line); ok && lineKey == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

func splitLine(line string) (key, rawValue string, ok bool) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(line, bom))
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	key, rawValue, ok = strings.Cut(trimmed, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), rawValue, true
}
