package model

import "encoding/xml"

// ConnectionPoint is the Australian extension resource linking an
// EndDevice to its metering point. The meterID carries the NMI of the
// premise; connectionPointID references identifiers internal to the
// network operator and is normally left unset by aggregators.
type ConnectionPoint struct {
	XMLName           xml.Name `xml:"ConnectionPoint"`
	ConnectionPointID string   `xml:"connectionPointID,omitempty"`
	MeterID           string   `xml:"meterID,omitempty"`
}

// Validate checks that the meter identifier is present.
func (c *ConnectionPoint) Validate() error {
	if c.MeterID == "" {
		return validationErr("ConnectionPoint", "meterID", "required")
	}
	return nil
}
