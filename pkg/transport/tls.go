package transport

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// TLSConfig holds configuration for authenticated utility connections.
type TLSConfig struct {
	// Credentials supplies the client certificate presented to the
	// server. Required unless InsecureSkipVerify testing setups opt
	// out of client authentication entirely.
	Credentials CredentialProvider

	// RootCAs is the pool of trusted CA certificates used to verify
	// the utility server. Nil falls back to the host's root set.
	RootCAs *x509.CertPool

	// ServerName is the expected server name for certificate
	// verification. Empty derives it from the dialed address.
	ServerName string

	// InsecureSkipVerify disables server certificate verification.
	// Only for testing - never use in production!
	InsecureSkipVerify bool
}

// NewClientTLSConfig creates a TLS configuration for connecting to a
// utility server with mutual TLS.
func NewClientTLSConfig(cfg *TLSConfig) (*tls.Config, error) {
	if cfg == nil {
		return nil, fmt.Errorf("TLSConfig is required")
	}
	if cfg.Credentials == nil {
		return nil, fmt.Errorf("credential provider is required")
	}

	cert, err := cfg.Credentials.ClientCertificate()
	if err != nil {
		return nil, err
	}
	if len(cert.Certificate) == 0 {
		return nil, fmt.Errorf("client certificate is required")
	}

	return &tls.Config{
		// Utility servers commonly terminate at TLS 1.2; allow 1.3
		// when offered.
		MinVersion: tls.VersionTLS12,

		Certificates: []tls.Certificate{cert},
		RootCAs:      cfg.RootCAs,
		ServerName:   cfg.ServerName,

		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}, nil
}

// LoadCACertPool reads a PEM bundle of CA certificates from disk.
func LoadCACertPool(path string) (*x509.CertPool, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA bundle: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no CA certificates found in %s", path)
	}
	return pool, nil
}
