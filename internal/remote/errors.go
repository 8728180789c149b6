package remote

import (
	"errors"
	"fmt"
)

// Kind classifies a non-2xx response.
type Kind int

const (
	// KindServer is any status the operation does not document.
	KindServer Kind = iota
	KindNameTaken
	KindTooLong
	KindBadCredentials
	KindForbidden
	KindUnauthorized
	KindNotFound
	KindInvalidMetadata
)

func (k Kind) String() string {
	switch k {
	case KindNameTaken:
		return "name taken"
	case KindTooLong:
		return "too long"
	case KindBadCredentials:
		return "bad credentials"
	case KindForbidden:
		return "forbidden"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not found"
	case KindInvalidMetadata:
		return "invalid metadata kind"
	default:
		return "server error"
	}
}

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	Op      Operation
	Code    int
	Kind    Kind
	Message string
}

func (e *StatusError) Error() string {
	if e.Kind == KindServer || e.Message == "" {
		return fmt.Sprintf("server error. Code %d", e.Code)
	}
	return e.Message
}

// TransportError is returned when no complete response was received.
type TransportError struct {
	Op  Operation
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: could not reach server: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a 2xx body is not the expected document.
type DecodeError struct {
	Op  Operation
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: unexpected response from server: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsStatus checks if an error is a StatusError and returns it.
func AsStatus(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsKind reports whether err is a StatusError of kind k.
func IsKind(err error, k Kind) bool {
	se, ok := AsStatus(err)
	return ok && se.Kind == k
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
