package smstrade

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat means a normalized value does not have the required shape.
	ErrInvalidFormat = errors.New("smstrade: invalid format")
	// ErrInvalidOption means a field was set where it is not permitted.
	ErrInvalidOption = errors.New("smstrade: invalid option")
	// ErrInvalidRoute means the route is not basic, gold or direct.
	ErrInvalidRoute = errors.New("smstrade: invalid route")
	// ErrTransport wraps failures of the HTTP collaborator.
	ErrTransport = errors.New("smstrade: transport failure")
	// ErrMalformedResponse means the gateway body did not start with a result code.
	ErrMalformedResponse = errors.New("smstrade: malformed response")
)

// FieldError describes a rejected field value. It unwraps to one of
// ErrInvalidFormat, ErrInvalidOption or ErrInvalidRoute.
type FieldError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s %q: %s", e.Err, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s: %s %q", e.Err, e.Field, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
