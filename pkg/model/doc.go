// Package model defines the IEEE 2030.5 resources exchanged during
// device registration: EndDevice, DeviceInformation, DER, DERCapability,
// and the Australian ConnectionPoint extension.
//
// Resources are plain values. Each declares its wire document through xml
// struct tags and enforces its field rules in Validate, which runs before
// any request carrying the resource is built. Identity-derived fields
// (the SFDI, the DeviceInformation lFDI) are filled in by NewDevice and
// never supplied by callers.
//
// No orchestration logic lives here; pkg/registration drives the
// registration sequence.
package model
