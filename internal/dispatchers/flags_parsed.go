package dispatchers

import (
	"strconv"
	"strings"
)

// ParsedFlags provides typed access to command-line flags.
type ParsedFlags struct {
	raw []string
}

// NewParsedFlags creates a ParsedFlags from a slice of flag strings.
func NewParsedFlags(flags []string) *ParsedFlags {
	return &ParsedFlags{raw: flags}
}

// Raw returns the underlying flag strings.
func (f *ParsedFlags) Raw() []string {
	if f == nil {
		return nil
	}
	return f.raw
}

// Has returns true if the flag is present (for boolean flags).
func (f *ParsedFlags) Has(name string) bool {
	for _, flag := range f.Raw() {
		if flag == name {
			return true
		}
	}
	return false
}

// HasAny returns true if any of the names is present.
func (f *ParsedFlags) HasAny(names ...string) bool {
	for _, name := range names {
		if f.Has(name) {
			return true
		}
	}
	return false
}

// String returns the value of a --flag=value flag, or defaultVal if not present.
func (f *ParsedFlags) String(name, defaultVal string) string {
	prefix := name + "="
	for _, flag := range f.Raw() {
		if strings.HasPrefix(flag, prefix) {
			return strings.TrimPrefix(flag, prefix)
		}
	}
	return defaultVal
}

// Int returns the integer value of a flag, or defaultVal if not present or invalid.
func (f *ParsedFlags) Int(name string, defaultVal int) int {
	str := f.String(name, "")
	if str == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal
	}
	return n
}
