package chronicle

import "github.com/umahmood/haversine"

// EarthRadiusKM is the mean radius the haversine package works with.
const EarthRadiusKM = 6371.0

// DistanceKM is the haversine great-circle distance between two points given in degrees.
func DistanceKM(lat1, lon1, lat2, lon2 float64) float64 {
	_,km := haversine.Distance(
		haversine.Coord{Lat:lat1, Lon:lon1},
		haversine.Coord{Lat:lat2, Lon:lon2})
	return km
}
