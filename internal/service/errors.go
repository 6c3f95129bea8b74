package service

import "fmt"

// ValidationError marks a failure that aborts the current operation without
// retry: missing entities, wrong lifecycle status, malformed model output.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
