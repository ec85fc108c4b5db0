package model

import "fmt"

// ValidationError reports a malformed or out-of-range resource field.
// Validation failures are detected client-side before any request is
// built; nothing is sent.
type ValidationError struct {
	Resource string
	Field    string
	Reason   string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s.%s: %s", e.Resource, e.Field, e.Reason)
}

func validationErr(resource, field, format string, args ...any) error {
	return &ValidationError{
		Resource: resource,
		Field:    field,
		Reason:   fmt.Sprintf(format, args...),
	}
}
