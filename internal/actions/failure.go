package actions

import (
	"errors"
	"fmt"

	"github.com/raven-themes/raven/internal/archive"
	"github.com/raven-themes/raven/internal/remote"
	"github.com/raven-themes/raven/internal/store"
	"github.com/raven-themes/raven/internal/usage"
)

// Failure is the single line shown to the user for a failed command. The
// classified cause stays reachable through errors.Is and errors.As.
type Failure struct {
	Message string
	Err     error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Fail builds a Failure with a formatted message.
func Fail(err error, format string, args ...any) error {
	return &Failure{Message: "raven: " + fmt.Sprintf(format, args...), Err: err}
}

// Describe converts a classified error into the message printed for it.
// Usage errors and Failures pass through unchanged.
func Describe(err error) error {
	if err == nil {
		return nil
	}

	var ue *usage.Error
	if errors.As(err, &ue) {
		return err
	}
	var f *Failure
	if errors.As(err, &f) {
		return err
	}

	switch {
	case errors.Is(err, store.ErrNotLoggedIn):
		return Fail(err, "you are not logged in. Sign in with `raven login [name] [password]`")
	case errors.Is(err, store.ErrCorruptState):
		return Fail(err, "user info file in incorrect state. Sign in again with `raven login [name] [password]`")
	case errors.Is(err, archive.ErrUnsafePath):
		return Fail(err, "archive rejected: %v", err)
	}

	if se, ok := remote.AsStatus(err); ok {
		return Fail(err, "%s", se.Error())
	}

	var te *remote.TransportError
	if errors.As(err, &te) {
		return Fail(err, "something went wrong with %s: %v", te.Op, te.Err)
	}

	var de *remote.DecodeError
	if errors.As(err, &de) {
		return Fail(err, "something went wrong with %s: %v", de.Op, de.Err)
	}

	return Fail(err, "%v", err)
}
