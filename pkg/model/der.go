package model

import "encoding/xml"

// DER is the distributed-energy-resource container, a child of
// EndDevice. Its creation body is an empty document; the nameplate
// ratings are published separately to the capability sub-resource once
// the DER has its server-assigned ID.
type DER struct {
	XMLName xml.Name `xml:"DER"`

	// Capability holds the nameplate ratings published after creation.
	Capability DERCapability `xml:"-"`

	// ID is the server-assigned resource ID. Never serialized.
	ID string `xml:"-"`
}

// Validate checks the contained capability. The DER document itself has
// no fields.
func (d *DER) Validate() error {
	return d.Capability.Validate()
}

// DERCapability exposes the nameplate ratings of a DER: read-only values
// established by the manufacturer, such as the continuous rated active
// power in watts (rtgMaxW). Only rtgMaxW is mandatory; the other ratings
// are omitted from the wire when unset.
type DERCapability struct {
	XMLName              xml.Name             `xml:"DERCapability"`
	ModesSupported       DERControlMode       `xml:"modesSupported"`
	RtgMaxA              *ValueWithMultiplier `xml:"rtgMaxA,omitempty"`
	RtgMaxAh             *ValueWithMultiplier `xml:"rtgMaxAh,omitempty"`
	RtgMaxW              ValueWithMultiplier  `xml:"rtgMaxW"`
	RtgMaxChargeRateVA   *ValueWithMultiplier `xml:"rtgMaxChargeRateVA,omitempty"`
	RtgMaxChargeRateW    *ValueWithMultiplier `xml:"rtgMaxChargeRateW,omitempty"`
	RtgMaxDischargeRateVA *ValueWithMultiplier `xml:"rtgMaxDischargeRateVA,omitempty"`
	RtgMaxDischargeRateW *ValueWithMultiplier `xml:"rtgMaxDischargeRateW,omitempty"`
	Type                 DERType              `xml:"type"`
}

// Validate checks the rating ranges and the DER type code.
func (c *DERCapability) Validate() error {
	if c.RtgMaxW.Value < 0 {
		return validationErr("DERCapability", "rtgMaxW", "rated power %d must not be negative", c.RtgMaxW.Value)
	}
	for _, r := range []struct {
		name   string
		rating *ValueWithMultiplier
	}{
		{"rtgMaxA", c.RtgMaxA},
		{"rtgMaxAh", c.RtgMaxAh},
		{"rtgMaxChargeRateVA", c.RtgMaxChargeRateVA},
		{"rtgMaxChargeRateW", c.RtgMaxChargeRateW},
		{"rtgMaxDischargeRateVA", c.RtgMaxDischargeRateVA},
		{"rtgMaxDischargeRateW", c.RtgMaxDischargeRateW},
	} {
		if r.rating != nil && r.rating.Value < 0 {
			return validationErr("DERCapability", r.name, "rating %d must not be negative", r.rating.Value)
		}
	}
	if !c.Type.IsValid() {
		return validationErr("DERCapability", "type", "reserved code %d", c.Type)
	}
	return nil
}
