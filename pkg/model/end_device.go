package model

import (
	"encoding/xml"

	"github.com/sep2-protocol/sep2-go/pkg/identity"
)

// EndDevice is the root resource representing one physical or logical
// device on the utility server. Wire element order follows the document
// contract: deviceCategory, lFDI, sFDI, changedTime, postRate, enabled.
type EndDevice struct {
	XMLName        xml.Name       `xml:"EndDevice"`
	DeviceCategory DeviceCategory `xml:"deviceCategory"`
	LFDI           identity.LFDI  `xml:"lFDI"`
	SFDI           identity.SFDI  `xml:"sFDI"`
	ChangedTime    int64          `xml:"changedTime"`
	PostRate       int            `xml:"postRate"`
	Enabled        bool           `xml:"enabled"`

	// ID is the server-assigned resource ID, extracted from the creation
	// response. Never serialized.
	ID string `xml:"-"`
}

// Validate checks the EndDevice field rules, including that the SFDI is
// the one derived from the LFDI.
func (e *EndDevice) Validate() error {
	if e.DeviceCategory == 0 {
		return validationErr("EndDevice", "deviceCategory", "must not be zero")
	}
	if err := e.LFDI.Validate(); err != nil {
		return validationErr("EndDevice", "lFDI", "%v", err)
	}
	sfdi, err := identity.DeriveSFDI(e.LFDI)
	if err != nil {
		return validationErr("EndDevice", "lFDI", "%v", err)
	}
	if e.SFDI != sfdi {
		return validationErr("EndDevice", "sFDI", "%q is not derived from the lFDI (want %q)", e.SFDI, sfdi)
	}
	if e.ChangedTime < 0 {
		return validationErr("EndDevice", "changedTime", "must not be negative")
	}
	if e.PostRate < 0 {
		return validationErr("EndDevice", "postRate", "must not be negative")
	}
	return nil
}

// EndDeviceList is the paged collection returned by the server for the
// /edev resource.
type EndDeviceList struct {
	XMLName    xml.Name    `xml:"EndDeviceList"`
	All        int         `xml:"all,attr,omitempty"`
	Results    int         `xml:"results,attr,omitempty"`
	EndDevices []EndDevice `xml:"EndDevice"`
}

// Validate is a no-op; lists are server-produced.
func (l *EndDeviceList) Validate() error { return nil }
