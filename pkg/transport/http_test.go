package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sep2-protocol/sep2-go/pkg/identity"
)

func TestHTTPTransportSend(t *testing.T) {
	var gotMethod, gotPath, gotContentType, gotAccept string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Location", "/edev/7")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	tr, err := NewHTTPTransport(&HTTPConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewHTTPTransport failed: %v", err)
	}

	resp, err := tr.Send(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/edev",
		Body:   []byte("<EndDevice></EndDevice>"),
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if gotMethod != http.MethodPost || gotPath != "/edev" {
		t.Errorf("server saw %s %s, want POST /edev", gotMethod, gotPath)
	}
	if gotContentType != ContentType {
		t.Errorf("Content-Type = %q, want %q", gotContentType, ContentType)
	}
	if gotAccept != ContentType {
		t.Errorf("Accept = %q, want %q", gotAccept, ContentType)
	}
	if string(gotBody) != "<EndDevice></EndDevice>" {
		t.Errorf("server saw body %q", gotBody)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("StatusCode = %d, want 201", resp.StatusCode)
	}
	if loc := resp.Location(); loc != "/edev/7" {
		t.Errorf("Location = %q, want /edev/7", loc)
	}
}

func TestHTTPTransportQueryPath(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", ContentType)
		io.WriteString(w, `<EndDeviceList all="0" results="0"></EndDeviceList>`)
	}))
	defer server.Close()

	tr, err := NewHTTPTransport(&HTTPConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewHTTPTransport failed: %v", err)
	}

	resp, err := tr.Send(context.Background(), Request{Method: http.MethodGet, Path: "/edev?s=0&l=5"})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if gotQuery != "s=0&l=5" {
		t.Errorf("query = %q, want s=0&l=5", gotQuery)
	}
	if len(resp.Body) == 0 {
		t.Error("response body is empty")
	}
}

func TestHTTPTransportErrorStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer server.Close()

	tr, err := NewHTTPTransport(&HTTPConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewHTTPTransport failed: %v", err)
	}

	resp, err := tr.Send(context.Background(), Request{Method: http.MethodPut, Path: "/edev/1/cp"})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", resp.StatusCode)
	}
}

func TestHTTPTransportNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	tr, err := NewHTTPTransport(&HTTPConfig{BaseURL: url})
	if err != nil {
		t.Fatalf("NewHTTPTransport failed: %v", err)
	}

	_, err = tr.Send(context.Background(), Request{Method: http.MethodGet, Path: "/edev"})
	if err == nil {
		t.Fatal("Send to closed server succeeded, want error")
	}
	var terr *Error
	if !errors.As(err, &terr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if terr.Method != http.MethodGet || terr.Path != "/edev" {
		t.Errorf("error identifies %s %s, want GET /edev", terr.Method, terr.Path)
	}
}

func TestHTTPTransportAuthHeaders(t *testing.T) {
	var gotToken string
	var gotForwarded string
	var hasForwarded bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Token")
		if vals := r.Header["X-Forwarded-Client-Cert"]; len(vals) > 0 {
			hasForwarded = true
			gotForwarded = vals[0]
		}
	}))
	defer server.Close()

	lfdi, err := identity.ParseLFDI("21352135135")
	if err != nil {
		t.Fatalf("ParseLFDI failed: %v", err)
	}

	tr, err := NewHTTPTransport(&HTTPConfig{
		BaseURL: server.URL,
		Auth:    XTokenAuth{LFDI: lfdi},
	})
	if err != nil {
		t.Fatalf("NewHTTPTransport failed: %v", err)
	}

	if _, err := tr.Send(context.Background(), Request{Method: http.MethodGet, Path: "/edev"}); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if gotToken != "2282004631861" {
		t.Errorf("X-Token = %q, want %q", gotToken, "2282004631861")
	}
	if !hasForwarded || gotForwarded != "" {
		t.Errorf("X-Forwarded-Client-Cert = (%q, present=%v), want empty header present", gotForwarded, hasForwarded)
	}
}

func TestNewHTTPTransportValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  *HTTPConfig
	}{
		{"nil config", nil},
		{"missing scheme", &HTTPConfig{BaseURL: "utility.example"}},
		{"empty URL", &HTTPConfig{}},
		{"TLS without credentials", &HTTPConfig{BaseURL: "https://utility.example", TLS: &TLSConfig{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewHTTPTransport(tt.cfg); err == nil {
				t.Error("NewHTTPTransport succeeded, want error")
			}
		})
	}
}
