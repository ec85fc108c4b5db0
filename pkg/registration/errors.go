package registration

import "fmt"

// ProtocolError reports a server response that violates the expected
// outcome of a registration step: a wrong status code, or a creation
// response with a missing or unusable Location header.
type ProtocolError struct {
	Method string
	Path   string
	Status int
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("protocol: %s %s returned %d: %s: %v", e.Method, e.Path, e.Status, e.Reason, e.Err)
	}
	return fmt.Sprintf("protocol: %s %s returned %d: %s", e.Method, e.Path, e.Status, e.Reason)
}

// Unwrap returns the underlying cause, if any.
func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// Error wraps a failure with the stage the run could not reach. The
// underlying cause is a *transport.Error for network failures or a
// *ProtocolError for unexpected responses.
type Error struct {
	// Stage is the target stage of the step that failed. Everything
	// before it completed; nothing after it was attempted.
	Stage Stage

	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("registration: stage %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying failure.
func (e *Error) Unwrap() error {
	return e.Err
}
