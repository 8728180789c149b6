package usage

import "fmt"

// InvalidConfigKey is returned for keys raven does not know.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("raven: unknown config key '%s'. See 'raven config list'.", key),
	}
}
