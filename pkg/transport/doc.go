// Package transport submits protocol requests to a 2030.5 utility
// server.
//
// The Transport interface is a single capability: send one request, get
// one response. Callers pick an implementation once at construction and
// never branch on it afterwards:
//
//   - HTTPTransport performs real network calls over TLS, authenticated
//     with a client certificate supplied by an injected
//     CredentialProvider (or with local-mode token headers).
//   - RecordingTransport performs no I/O: it renders every would-be
//     request to an observable output and answers with synthetic success
//     responses carrying placeholder identifiers, so a full registration
//     sequence can be validated without a live server.
//
// Both implementations tolerate concurrent use; they hold no mutable
// state shared between calls beyond connection pooling (HTTP) and the
// placeholder ID counters (recording).
package transport
