package transport

import (
	"context"
	"fmt"
	"net/http"
)

// ContentType is the media type of 2030.5 resource documents.
const ContentType = "application/sep+xml"

// Request is one protocol operation to submit.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT).
	Method string

	// Path is the server-relative resource path, e.g. "/edev/7/di".
	Path string

	// Body is the XML document to send, nil for bodyless requests.
	Body []byte
}

// Response is the outcome of a successfully transported request. A
// response with an unexpected status code is still a Response; only
// network-level failures surface as errors.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Location returns the location reference of a creation response, empty
// when absent.
func (r *Response) Location() string {
	return r.Header.Get("Location")
}

// Error reports a network, TLS, or timeout failure raised by a
// Transport implementation.
type Error struct {
	Method string
	Path   string
	Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("transport: %s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap returns the underlying failure.
func (e *Error) Unwrap() error {
	return e.Err
}

// Transport submits protocol requests. Implementations must be safe for
// concurrent use by independent registration runs.
type Transport interface {
	// Send submits one request and returns the server's response. The
	// context bounds the call; expiry surfaces as an *Error.
	Send(ctx context.Context, req Request) (*Response, error)
}

// Compile-time interface satisfaction checks.
var (
	_ Transport = (*HTTPTransport)(nil)
	_ Transport = (*RecordingTransport)(nil)
)
