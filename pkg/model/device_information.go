package model

import (
	"encoding/xml"

	"github.com/sep2-protocol/sep2-go/pkg/identity"
)

// DeviceInformation carries manufacturing and location metadata for an
// EndDevice. It changes rarely, typically only on firmware updates, and
// is created only after the EndDevice has a server-assigned ID.
type DeviceInformation struct {
	XMLName              xml.Name             `xml:"DeviceInformation"`
	FunctionsImplemented FunctionsImplemented `xml:"functionsImplemented"`
	GPSLocation          *GPSLocation         `xml:"gpsLocation,omitempty"`
	LFDI                 identity.LFDI        `xml:"lFDI"`
	MfDate               int64                `xml:"mfDate"`
	MfHwVer              string               `xml:"mfHwVer,omitempty"`
	MfID                 uint32               `xml:"mfID,omitempty"`
	MfInfo               string               `xml:"mfInfo,omitempty"`
	MfModel              string               `xml:"mfModel,omitempty"`
	MfSerNum             string               `xml:"mfSerNum,omitempty"`
	PrimaryPower         PowerSource          `xml:"primaryPower"`
	SecondaryPower       PowerSource          `xml:"secondaryPower"`
	SwActTime            int64                `xml:"swActTime"`
	SwVer                string               `xml:"swVer,omitempty"`
}

// Validate checks the DeviceInformation field rules.
func (d *DeviceInformation) Validate() error {
	if err := d.LFDI.Validate(); err != nil {
		return validationErr("DeviceInformation", "lFDI", "%v", err)
	}
	if d.GPSLocation != nil {
		if err := d.GPSLocation.Validate(); err != nil {
			return err
		}
	}
	if d.MfDate < 0 {
		return validationErr("DeviceInformation", "mfDate", "must not be negative")
	}
	if d.SwActTime < 0 {
		return validationErr("DeviceInformation", "swActTime", "must not be negative")
	}
	if !d.PrimaryPower.IsValid() {
		return validationErr("DeviceInformation", "primaryPower", "unknown code %d", d.PrimaryPower)
	}
	if !d.SecondaryPower.IsValid() {
		return validationErr("DeviceInformation", "secondaryPower", "unknown code %d", d.SecondaryPower)
	}
	return nil
}
