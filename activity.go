package chronicle

import "math"

// AirportActivity counts departures plus arrivals per airport code. Codes that don't
// resolve to an airport are still counted; renderers skip them when they look up positions.
func AirportActivity(flights []Flight) map[string]int {
	activity := map[string]int{}
	for _,f := range flights {
		activity[f.DepartureAirport]++
		activity[f.ArrivalAirport]++
	}
	return activity
}

const(
	MinMarkerRadius = 4.0
	MaxMarkerRadius = 14.0
)

// MarkerRadius grows with the square root of activity, so busy hubs don't swamp the map.
func MarkerRadius(count int) float64 {
	if count <= 0 { return 0 }
	r := MinMarkerRadius + 2*math.Sqrt(float64(count-1))
	return math.Min(r, MaxMarkerRadius)
}
