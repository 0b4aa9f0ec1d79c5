package rules

import "errors"

var _ error = &ValidationError{}

// ValidationError is returned when a rule field is out of range.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

func (e *ValidationError) Is(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}
