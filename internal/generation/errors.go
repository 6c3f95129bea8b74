package generation

import (
	"errors"
	"fmt"
)

// ErrOverloaded marks a remote-side overload signal. It is the only error
// class the retrying client retries; everything else propagates immediately.
var ErrOverloaded = errors.New("provider overloaded")

// IsTransient reports whether err should be retried with backoff.
func IsTransient(err error) bool {
	return errors.Is(err, ErrOverloaded)
}

// MissingVariableError is returned when a template references a variable
// that was not supplied.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("template: missing variable %q", e.Name)
}

// RenderError wraps any other template substitution failure.
type RenderError struct {
	Reason string
}

func (e *RenderError) Error() string {
	return "template: " + e.Reason
}
