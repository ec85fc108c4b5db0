// Package log provides structured protocol event logging for the
// registration client.
//
// Library code reports what it does on the wire (requests, responses,
// stage transitions, failures) as Events to a Logger capability supplied
// at construction. Applications choose the sink:
//
//   - NoopLogger discards everything (the default).
//   - SlogAdapter forwards events to a log/slog logger.
//   - FileLogger persists events as a CBOR stream for later analysis.
//   - MultiLogger fans out to several sinks at once.
//
// Events carry the registration run ID so that events from concurrent
// runs sharing one transport can be separated afterwards.
package log
