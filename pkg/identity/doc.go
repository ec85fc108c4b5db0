// Package identity implements IEEE 2030.5 device identifiers.
//
// Every end device carries a 160-bit long-form device identifier (LFDI),
// conventionally displayed as hexadecimal. For self-certified devices it is
// the left-truncated SHA-256 fingerprint of the device certificate; for
// aggregator-managed devices it is an already-unique value assigned by the
// aggregator. The short-form device identifier (SFDI) is never assigned
// independently: it is derived from the LFDI by left-truncating to 36 bits,
// rendering those bits as an 11-digit decimal number, and appending a
// sum-of-digits checksum digit.
//
// The hex representation defines the LFDI's field width (4 bits per digit),
// so an LFDI must not be left-padded with zero digits relative to its
// assigned width: padding changes which 36 bits are "leading".
package identity
