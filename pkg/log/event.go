package log

import "time"

// Event represents a protocol log event captured during a registration
// run. CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RunID uniquely identifies the registration run (UUID).
	RunID string `cbor:"2,keyasint"`

	// Direction indicates message flow.
	Direction Direction `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Stage is the registration stage the event belongs to.
	Stage string `cbor:"5,keyasint,omitempty"`

	// Method and Path describe the request on the wire.
	Method string `cbor:"6,keyasint,omitempty"`
	Path   string `cbor:"7,keyasint,omitempty"`

	// Status is the response status code (responses only).
	Status int `cbor:"8,keyasint,omitempty"`

	// LFDI is the device identifier the run belongs to.
	LFDI string `cbor:"9,keyasint,omitempty"`

	// Error is the failure message (error events only).
	Error string `cbor:"10,keyasint,omitempty"`
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionOut indicates an outgoing request.
	DirectionOut Direction = 0
	// DirectionIn indicates an incoming response.
	DirectionIn Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionOut:
		return "OUT"
	case DirectionIn:
		return "IN"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryRequest is an outgoing protocol request.
	CategoryRequest Category = 0
	// CategoryResponse is an incoming protocol response.
	CategoryResponse Category = 1
	// CategoryStage is a registration stage transition.
	CategoryStage Category = 2
	// CategoryError is a failure at any layer.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryRequest:
		return "REQUEST"
	case CategoryResponse:
		return "RESPONSE"
	case CategoryStage:
		return "STAGE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
