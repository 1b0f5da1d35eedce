package chronicle

import "math"

// The map is Pacific-centred: Asia on the left, the Americas on the right. To keep every
// route in one unbroken numeric range, longitudes live in [0,360) for rendering. The
// canonical Airport coordinates are never touched; everything here returns new values.

// Position is a projection-adjusted coordinate, for renderers only.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NormalizeLongitude(lon float64) float64 {
	if lon < 0 { return lon + 360 }
	return lon
}

// DatelineCorrection returns an alternate arrival position when the straight
// interpolation between the normalised endpoints would wrap the long way around
// the map; nil when no correction is needed.
func DatelineCorrection(dep, arr Airport) *Position {
	depLon := NormalizeLongitude(dep.Longitude)
	arrLon := NormalizeLongitude(arr.Longitude)
	delta := arrLon - depLon

	if math.Abs(delta) <= 180 { return nil }

	adjusted := arrLon + 360
	if delta > 0 { adjusted = arrLon - 360 }

	return &Position{Latitude: arr.Latitude, Longitude: adjusted}
}

// ProjectedEndpoints are the two coordinates a renderer should draw a route between.
func ProjectedEndpoints(dep, arr Airport, modified *Position) (Position, Position) {
	start := dep.Projected()
	if modified != nil { return start, *modified }
	return start, arr.Projected()
}
