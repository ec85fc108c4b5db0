package transport

import (
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/sep2-protocol/sep2-go/pkg/identity"
)

// CredentialProvider supplies the client certificate presented to the
// utility server. Implementations must tolerate concurrent use.
type CredentialProvider interface {
	// ClientCertificate returns the certificate and key to present
	// during the TLS handshake.
	ClientCertificate() (tls.Certificate, error)
}

// FileCredentials loads the client certificate and key from PEM files.
// The certificate is normally issued by the certificate authority the
// utility operates; for testing it may be self-signed.
type FileCredentials struct {
	CertFile string
	KeyFile  string
}

// ClientCertificate loads the key pair from disk.
func (f FileCredentials) ClientCertificate() (tls.Certificate, error) {
	cert, err := tls.LoadX509KeyPair(f.CertFile, f.KeyFile)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("failed to load client certificate: %w", err)
	}
	return cert, nil
}

// StaticCredentials holds an already-loaded client certificate.
type StaticCredentials struct {
	Certificate tls.Certificate
}

// ClientCertificate returns the stored certificate.
func (s StaticCredentials) ClientCertificate() (tls.Certificate, error) {
	return s.Certificate, nil
}

// HeaderAuth adds authentication headers to every outgoing request.
type HeaderAuth interface {
	ApplyHeaders(h http.Header)
}

// XTokenAuth authenticates in local test mode, where a fronting proxy
// accepts the device identity as a token instead of terminating mutual
// TLS. The token is the decimal rendering of the LFDI; the empty
// forwarded-client-cert header is required by the local proxy.
type XTokenAuth struct {
	LFDI identity.LFDI
}

// ApplyHeaders sets the local-mode authentication headers.
func (a XTokenAuth) ApplyHeaders(h http.Header) {
	h.Set("X-Token", a.LFDI.Decimal())
	h.Set("X-Forwarded-Client-Cert", "")
}

// Compile-time interface satisfaction checks.
var (
	_ CredentialProvider = FileCredentials{}
	_ CredentialProvider = StaticCredentials{}
	_ HeaderAuth         = XTokenAuth{}
)
