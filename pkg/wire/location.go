package wire

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLocation reports a creation response whose location reference
// is missing or unusable.
var ErrInvalidLocation = errors.New("invalid location reference")

// TrailingResourceID extracts the server-assigned resource ID from a
// location reference. The ID is the last segment of the location path and
// must be a non-empty decimal number, e.g. "7" from "/edev/7".
func TrailingResourceID(location string) (string, error) {
	if location == "" {
		return "", fmt.Errorf("%w: empty location", ErrInvalidLocation)
	}
	id := location[strings.LastIndex(location, "/")+1:]
	if id == "" {
		return "", fmt.Errorf("%w: %q has no trailing segment", ErrInvalidLocation, location)
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("%w: resource ID %q is not decimal", ErrInvalidLocation, id)
		}
	}
	return id, nil
}
