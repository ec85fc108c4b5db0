package wire

import (
	"encoding/xml"
	"fmt"
)

// Document is implemented by resource types that serialize to a wire
// document. Validate must reject a resource before any request carrying
// it is built.
type Document interface {
	Validate() error
}

// Marshal validates a resource and encodes it as an XML fragment.
// Invalid resources never reach the encoder.
func Marshal(doc Document) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	data, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}

// Unmarshal decodes an XML document into a resource.
func Unmarshal(data []byte, doc any) error {
	if err := xml.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}
