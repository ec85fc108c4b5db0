package identity

import (
	"crypto/sha256"
	"crypto/x509"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Identifier size constants.
const (
	// LFDIBits is the field width of a full long-form device identifier.
	LFDIBits = 160

	// LFDIHexLength is the hex length of a full 160-bit LFDI.
	LFDIHexLength = 40

	// SFDIBits is the number of leading LFDI bits carried by an SFDI.
	SFDIBits = 36

	// SFDILength is the rendered SFDI length: 11 value digits plus one
	// checksum digit.
	SFDILength = 12
)

// Identifier errors.
var (
	ErrInvalidLFDI      = errors.New("invalid LFDI")
	ErrInvalidSFDI      = errors.New("invalid SFDI")
	ErrInsufficientBits = errors.New("LFDI represents fewer than 36 bits")
)

// LFDI is a long-form device identifier: up to 160 bits, stored as
// normalized (lowercase, unprefixed) hexadecimal. The hex length defines
// the field width.
type LFDI string

// ParseLFDI parses a hex string (optionally 0x-prefixed) into an LFDI.
// The width encoded by the hex digits must not exceed 160 bits.
func ParseLFDI(s string) (LFDI, error) {
	h := strings.TrimSpace(s)
	h = strings.TrimPrefix(strings.TrimPrefix(h, "0x"), "0X")
	if h == "" {
		return "", fmt.Errorf("%w: empty identifier", ErrInvalidLFDI)
	}
	if len(h) > LFDIHexLength {
		return "", fmt.Errorf("%w: %d hex digits exceeds %d bits", ErrInvalidLFDI, len(h), LFDIBits)
	}
	h = strings.ToLower(h)
	for _, c := range h {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", fmt.Errorf("%w: non-hexadecimal digit %q", ErrInvalidLFDI, c)
		}
	}
	return LFDI(h), nil
}

// LFDIFromCertificate derives the LFDI of a self-certified device from its
// certificate: the SHA-256 fingerprint of the certificate, left-truncated
// to 160 bits.
func LFDIFromCertificate(cert *x509.Certificate) LFDI {
	return LFDIFromDER(cert.Raw)
}

// LFDIFromDER derives an LFDI from raw certificate DER bytes.
func LFDIFromDER(der []byte) LFDI {
	sum := sha256.Sum256(der)
	return LFDI(fmt.Sprintf("%x", sum[:LFDIBits/8]))
}

// String returns the normalized hex representation.
func (l LFDI) String() string {
	return string(l)
}

// Bits returns the field width represented by the identifier.
func (l LFDI) Bits() int {
	return 4 * len(l)
}

// Value returns the identifier's numeric value.
func (l LFDI) Value() *big.Int {
	v, _ := new(big.Int).SetString(string(l), 16)
	if v == nil {
		v = new(big.Int)
	}
	return v
}

// Decimal returns the identifier's value as a decimal string. Local-mode
// token authentication transmits the LFDI in this form.
func (l LFDI) Decimal() string {
	return l.Value().String()
}

// Validate checks that the identifier is well-formed.
func (l LFDI) Validate() error {
	_, err := ParseLFDI(string(l))
	return err
}

// SFDI is a short-form device identifier: 11 decimal digits carrying the
// leading 36 bits of the LFDI, followed by one checksum digit.
type SFDI string

// DeriveSFDI computes the short-form identifier for an LFDI.
//
// The leading 36 bits of the identifier (most-significant bits at the
// width given by the hex representation) are rendered as a zero-padded
// 11-digit decimal number, and the sum-of-digits checksum digit is
// appended. The function is pure: identical input always yields identical
// output.
func DeriveSFDI(lfdi LFDI) (SFDI, error) {
	if err := lfdi.Validate(); err != nil {
		return "", err
	}
	bits := lfdi.Bits()
	if bits < SFDIBits {
		return "", fmt.Errorf("%w: have %d", ErrInsufficientBits, bits)
	}
	v := lfdi.Value()
	v.Rsh(v, uint(bits-SFDIBits))
	digits := fmt.Sprintf("%011d", v)
	return SFDI(digits + string('0'+checksumDigit(digits))), nil
}

// checksumDigit returns the digit that makes the total digit sum a
// multiple of ten.
func checksumDigit(digits string) byte {
	sum := 0
	for _, c := range digits {
		sum += int(c - '0')
	}
	return byte((10 - sum%10) % 10)
}

// String returns the 12-digit decimal representation.
func (s SFDI) String() string {
	return string(s)
}

// Validate checks length, digit content, and the checksum: the digits of a
// valid SFDI sum to a multiple of ten.
func (s SFDI) Validate() error {
	if len(s) != SFDILength {
		return fmt.Errorf("%w: must be %d digits", ErrInvalidSFDI, SFDILength)
	}
	sum := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: non-decimal digit %q", ErrInvalidSFDI, c)
		}
		sum += int(c - '0')
	}
	if sum%10 != 0 {
		return fmt.Errorf("%w: checksum mismatch", ErrInvalidSFDI)
	}
	return nil
}
