package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrUnknownCommand
	ErrInvalidConfigKey
	ErrPasswordMismatch
	ErrInvalidMetadataKind
	ErrInvalidThemeName
	ErrNotInteractive
)

// Exit codes:
//
//	Exit 1: Environment errors
//	  - Unknown errors
//	  - Unknown command
//	  - Invalid config key
//	  - Not a terminal
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing argument
//	  - Password mismatch
//	  - Invalid metadata kind
//	  - Invalid theme name
var exitCodes = map[ErrorKind]int{
	ErrUnknown:             1,
	ErrInvalidFlag:         2,
	ErrMissingArgument:     2,
	ErrUnknownCommand:      1,
	ErrInvalidConfigKey:    1,
	ErrPasswordMismatch:    2,
	ErrInvalidMetadataKind: 2,
	ErrInvalidThemeName:    2,
	ErrNotInteractive:      1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // overrides the code derived from Kind when non-zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the exit code for this error.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

var _ error = (*Error)(nil)
