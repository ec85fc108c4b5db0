package model

// ValueWithMultiplier is a numeric value scaled by a power-of-ten
// multiplier, the representation 2030.5 uses for ratings and
// measurements: the effective quantity is Value * 10^Multiplier.
type ValueWithMultiplier struct {
	Multiplier int32 `xml:"multiplier"`
	Value      int64 `xml:"value"`
}

// GPSLocation is a device location in WGS 84 coordinates.
type GPSLocation struct {
	Lat float64 `xml:"lat"`
	Lon float64 `xml:"lon"`
}

// Validate checks the coordinate ranges.
func (g *GPSLocation) Validate() error {
	if g.Lat < -90 || g.Lat > 90 {
		return validationErr("GPSLocation", "lat", "%v out of range [-90, 90]", g.Lat)
	}
	if g.Lon < -180 || g.Lon > 180 {
		return validationErr("GPSLocation", "lon", "%v out of range [-180, 180]", g.Lon)
	}
	return nil
}
