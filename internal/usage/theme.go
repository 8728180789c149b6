package usage

import (
	"fmt"
	"strings"
)

// PasswordMismatch is returned when the password confirmation differs.
func PasswordMismatch() *Error {
	return &Error{
		Kind:    ErrPasswordMismatch,
		Message: "raven: passwords need to match",
	}
}

// InvalidMetadataKind is returned for a metadata kind outside valid.
func InvalidMetadataKind(kind string, valid []string) *Error {
	return &Error{
		Kind:    ErrInvalidMetadataKind,
		Message: fmt.Sprintf("raven: '%s' is not a metadata kind (expected %s)", kind, strings.Join(valid, " or ")),
	}
}

// InvalidThemeName is returned for names that cannot be a theme directory.
func InvalidThemeName(name string) *Error {
	return &Error{
		Kind:    ErrInvalidThemeName,
		Message: fmt.Sprintf("raven: '%s' is not a valid theme name", name),
	}
}

// NotInteractive is returned when a command needs a terminal.
func NotInteractive(command string) *Error {
	return &Error{
		Kind:    ErrNotInteractive,
		Message: fmt.Sprintf("raven: '%s' needs an interactive terminal", command),
	}
}
