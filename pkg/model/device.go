package model

import (
	"github.com/sep2-protocol/sep2-go/pkg/identity"
)

// Device bundles the resources registered for one end device. Once the
// registration sequence completes, the set is treated as immutable by
// this client.
type Device struct {
	EndDevice       EndDevice
	Information     DeviceInformation
	DER             DER
	ConnectionPoint ConnectionPoint
}

// DeviceConfig carries the caller-supplied fields for a device.
// Identity-derived fields are computed by NewDevice: the sFDI from the
// LFDI, and the DeviceInformation lFDI from the device LFDI.
type DeviceConfig struct {
	// LFDI is the device long-form identifier as hex, optionally
	// 0x-prefixed. Immutable once assigned to a device.
	LFDI string

	// Category is the deviceCategory bitmask.
	Category DeviceCategory

	// ChangedTime is the time of the last change to the device record,
	// in seconds since the 2030.5 epoch.
	ChangedTime int64

	// PostRate is the requested client POST interval in seconds.
	PostRate int

	// Disabled marks the device as not enabled at registration.
	Disabled bool

	// Information is the device metadata. Its LFDI field is overwritten
	// with the device identifier.
	Information DeviceInformation

	// Capability holds the DER nameplate ratings.
	Capability DERCapability

	// ConnectionPoint links the device to its metering point.
	ConnectionPoint ConnectionPoint
}

// NewDevice builds and validates the resource set for one device,
// deriving the SFDI and threading the LFDI into DeviceInformation. It
// returns a ValidationError before any network interaction can happen.
func NewDevice(cfg DeviceConfig) (*Device, error) {
	lfdi, err := identity.ParseLFDI(cfg.LFDI)
	if err != nil {
		return nil, validationErr("EndDevice", "lFDI", "%v", err)
	}
	sfdi, err := identity.DeriveSFDI(lfdi)
	if err != nil {
		return nil, validationErr("EndDevice", "lFDI", "%v", err)
	}

	info := cfg.Information
	info.LFDI = lfdi

	dev := &Device{
		EndDevice: EndDevice{
			DeviceCategory: cfg.Category,
			LFDI:           lfdi,
			SFDI:           sfdi,
			ChangedTime:    cfg.ChangedTime,
			PostRate:       cfg.PostRate,
			Enabled:        !cfg.Disabled,
		},
		Information: info,
		DER: DER{
			Capability: cfg.Capability,
		},
		ConnectionPoint: cfg.ConnectionPoint,
	}
	if err := dev.Validate(); err != nil {
		return nil, err
	}
	return dev, nil
}

// Validate checks every resource in the set.
func (d *Device) Validate() error {
	if err := d.EndDevice.Validate(); err != nil {
		return err
	}
	if err := d.Information.Validate(); err != nil {
		return err
	}
	if d.Information.LFDI != d.EndDevice.LFDI {
		return validationErr("DeviceInformation", "lFDI", "%q does not match the EndDevice lFDI %q",
			d.Information.LFDI, d.EndDevice.LFDI)
	}
	if err := d.DER.Validate(); err != nil {
		return err
	}
	if err := d.ConnectionPoint.Validate(); err != nil {
		return err
	}
	return nil
}
