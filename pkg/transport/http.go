package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds a single request when the caller's context
// carries no deadline of its own.
const DefaultTimeout = 30 * time.Second

// HTTPConfig holds configuration for a live utility connection.
type HTTPConfig struct {
	// BaseURL is the server origin, e.g. "https://utility.example:8443".
	// Resource paths from requests are resolved against it.
	BaseURL string

	// TLS configures mutual-TLS authentication. Nil sends requests
	// without a client certificate, which only works behind a proxy
	// that authenticates via Auth headers instead.
	TLS *TLSConfig

	// Auth optionally adds authentication headers to every request,
	// used in local test mode where a proxy accepts token headers in
	// place of mutual TLS.
	Auth HeaderAuth

	// Timeout bounds each request when the caller's context has no
	// deadline. Zero means DefaultTimeout.
	Timeout time.Duration
}

// HTTPTransport submits requests to a live utility server.
type HTTPTransport struct {
	base    *url.URL
	client  *http.Client
	auth    HeaderAuth
	timeout time.Duration
}

// NewHTTPTransport creates a transport for the configured server.
func NewHTTPTransport(cfg *HTTPConfig) (*HTTPTransport, error) {
	if cfg == nil {
		return nil, fmt.Errorf("HTTPConfig is required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must include scheme and host", cfg.BaseURL)
	}

	client := &http.Client{}
	if cfg.TLS != nil {
		tlsConfig, err := NewClientTLSConfig(cfg.TLS)
		if err != nil {
			return nil, err
		}
		client.Transport = &http.Transport{TLSClientConfig: tlsConfig}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &HTTPTransport{
		base:    base,
		client:  client,
		auth:    cfg.Auth,
		timeout: timeout,
	}, nil
}

// Send submits one request and reads the full response body.
func (t *HTTPTransport) Send(ctx context.Context, req Request) (*Response, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	ref, err := url.Parse(req.Path)
	if err != nil {
		return nil, &Error{Method: req.Method, Path: req.Path, Err: fmt.Errorf("invalid path: %w", err)}
	}
	target := t.base.ResolveReference(ref)

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), body)
	if err != nil {
		return nil, &Error{Method: req.Method, Path: req.Path, Err: err}
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", ContentType)
	}
	httpReq.Header.Set("Accept", ContentType)
	if t.auth != nil {
		t.auth.ApplyHeaders(httpReq.Header)
	}

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, &Error{Method: req.Method, Path: req.Path, Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &Error{Method: req.Method, Path: req.Path, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       respBody,
	}, nil
}
