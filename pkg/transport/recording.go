package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// emptyEndDeviceList is returned for GET requests so that paging
// callers terminate immediately.
const emptyEndDeviceList = `<EndDeviceList all="0" results="0"></EndDeviceList>`

// RecordingTransport renders every request to an output writer instead
// of performing I/O, and answers with synthetic success responses:
//
//   - POST returns 201 Created with a Location header pointing at the
//     collection path plus a placeholder identifier. Identifiers count
//     up from 1 per collection, so repeated runs produce identical
//     output.
//   - PUT returns 200 OK.
//   - GET returns 200 OK with an empty EndDeviceList.
//
// The rendered form of each request is the method and path line, the
// Content-Type header when a body is present, a blank line, and the
// body, so the output doubles as a human-readable session record.
type RecordingTransport struct {
	mu       sync.Mutex
	out      io.Writer
	counters map[string]int
	requests []Request
}

// NewRecordingTransport creates a transport that renders requests to
// out. A nil writer discards the rendering but still records requests
// for inspection.
func NewRecordingTransport(out io.Writer) *RecordingTransport {
	if out == nil {
		out = io.Discard
	}
	return &RecordingTransport{
		out:      out,
		counters: make(map[string]int),
	}
}

// Send renders the request and fabricates a success response.
func (t *RecordingTransport) Send(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, &Error{Method: req.Method, Path: req.Path, Err: err}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	stored := req
	if req.Body != nil {
		stored.Body = append([]byte(nil), req.Body...)
	}
	t.requests = append(t.requests, stored)

	if err := t.render(req); err != nil {
		return nil, &Error{Method: req.Method, Path: req.Path, Err: err}
	}

	header := make(http.Header)
	switch req.Method {
	case http.MethodPost:
		t.counters[req.Path]++
		header.Set("Location", fmt.Sprintf("%s/%d", req.Path, t.counters[req.Path]))
		return &Response{StatusCode: http.StatusCreated, Header: header}, nil
	case http.MethodGet:
		header.Set("Content-Type", ContentType)
		return &Response{
			StatusCode: http.StatusOK,
			Header:     header,
			Body:       []byte(emptyEndDeviceList),
		}, nil
	default:
		return &Response{StatusCode: http.StatusOK, Header: header}, nil
	}
}

func (t *RecordingTransport) render(req Request) error {
	if _, err := fmt.Fprintf(t.out, "%s %s\n", req.Method, req.Path); err != nil {
		return err
	}
	if req.Body != nil {
		if _, err := fmt.Fprintf(t.out, "Content-Type: %s\n\n%s\n", ContentType, req.Body); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(t.out)
	return err
}

// Requests returns a copy of every request sent so far, in order.
func (t *RecordingTransport) Requests() []Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Request(nil), t.requests...)
}
