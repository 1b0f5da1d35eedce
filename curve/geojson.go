package curve

import(
	geojson "github.com/paulmach/go.geojson"
	geo "github.com/paulmach/go.geo"

	fpc "github.com/netbeen/flight-path-chronicle"
)

// Coordinates are in the projected space (longitudes may run past 180); Leaflet and
// friends draw them as-is, which keeps Pacific crossings in one piece.

func pathCoords(path *geo.Path) [][]float64 {
	coords := make([][]float64, 0, path.Length())
	for i:=0; i<path.Length(); i++ {
		p := path.GetAt(i)
		coords = append(coords, []float64{p.X(), p.Y()})
	}
	return coords
}

// RouteFeature is a LineString for one flight's arc.
func RouteFeature(pf fpc.ProcessedFlight, path *geo.Path) *geojson.Feature {
	f := geojson.NewLineStringFeature(pathCoords(path))
	f.SetProperty("flightNumber", pf.FlightNumber)
	f.SetProperty("route", pf.Route())
	f.SetProperty("departureTime", pf.DepartureTime)
	f.SetProperty("direction", string(pf.Direction))
	f.SetProperty("color", pf.Color)
	f.SetProperty("curvature", pf.Curvature)
	f.SetProperty("distance", pf.Distance)
	return f
}

// AirportFeature is a Point sized by how busy the airport is.
func AirportFeature(a fpc.Airport, activity int) *geojson.Feature {
	pos := a.Projected()
	f := geojson.NewPointFeature([]float64{pos.Longitude, pos.Latitude})
	f.SetProperty("code", a.Code)
	f.SetProperty("name", a.Name)
	f.SetProperty("activity", activity)
	f.SetProperty("radius", fpc.MarkerRadius(activity))
	if a.City != "" { f.SetProperty("city", a.City) }
	if a.Country != "" { f.SetProperty("country", a.Country) }
	return f
}

// FeatureCollection has one LineString per drawable flight, then one Point per airport
// that saw any activity (sorted by code). A positive simplify threshold thins the arcs.
func FeatureCollection(pfs []fpc.ProcessedFlight, idx fpc.AirportIndex, activity map[string]int, segments int, simplifyThreshold float64) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _,pf := range pfs {
		path,ok := Arc(pf, idx, segments)
		if !ok { continue }
		fc.AddFeature(RouteFeature(pf, Simplify(path, simplifyThreshold)))
	}

	for _,code := range idx.Codes() {
		if n := activity[code]; n > 0 {
			fc.AddFeature(AirportFeature(idx[code], n))
		}
	}

	return fc
}
