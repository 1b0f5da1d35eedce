package chronicle

import(
	"github.com/iancoleman/orderedmap"
)

type Direction string
const(
	Outgoing  Direction = "outgoing"
	Returning Direction = "returning"
)

const(
	OutgoingColor  = "#f87171" // warm
	ReturningColor = "#60a5fa" // cool

	BaseCurvature = 0.15
)

func (d Direction)Color() string {
	if d == Outgoing { return OutgoingColor }
	return ReturningColor
}

// ProcessedFlight is a derived side-table entry; recompute it whenever the inputs change.
type ProcessedFlight struct {
	Flight // embedded

	Direction Direction `json:"direction"`
	Color     string    `json:"color"`
	Curvature float64   `json:"curvature"`

	// Present only for routes that need the date-line correction. Renderers should draw
	// to this point instead of the arrival airport.
	ArrivalAirportModified *Position `json:"arrivalAirportModified,omitempty"`

	Distance  float64   `json:"distance"` // km, unrounded
}

// RouteDirection: latitude going up is outgoing, down is returning; on the same parallel,
// longitude (in the normalised space) going up is outgoing.
func RouteDirection(dep, arr Airport) Direction {
	if arr.Latitude > dep.Latitude { return Outgoing }
	if arr.Latitude < dep.Latitude { return Returning }
	if NormalizeLongitude(arr.Longitude) > NormalizeLongitude(dep.Longitude) { return Outgoing }
	return Returning
}

// {{{ ProcessFlights

// ProcessFlights groups flights by ordered route and annotates each one with direction,
// colour, curvature and the date-line hint. Flights whose airports don't resolve are
// dropped. Output is grouped: routes in first-seen order, flights within a route in
// input order.
//
// Curvature is positive for both directions; the perpendicular used to build the
// control point flips when the endpoints swap, so A-B and B-A arc on opposite sides.
func ProcessFlights(flights []Flight, airports []Airport) []ProcessedFlight {
	idx := NewAirportIndex(airports)

	groups := orderedmap.New()
	for _,f := range flights {
		key := f.Route()
		group := []Flight{}
		if v,exists := groups.Get(key); exists {
			group = v.([]Flight)
		}
		groups.Set(key, append(group, f))
	}

	out := []ProcessedFlight{}
	for _,key := range groups.Keys() {
		v,_ := groups.Get(key)
		group := v.([]Flight)

		dep,ok1 := idx.Lookup(group[0].DepartureAirport)
		arr,ok2 := idx.Lookup(group[0].ArrivalAirport)
		if !ok1 || !ok2 { continue }

		direction := RouteDirection(dep, arr)
		distance := dep.DistKM(arr)

		for i,f := range group {
			out = append(out, ProcessedFlight{
				Flight: f,
				Direction: direction,
				Color: direction.Color(),
				Curvature: float64(i+1) * BaseCurvature,
				ArrivalAirportModified: DatelineCorrection(dep, arr),
				Distance: distance,
			})
		}
	}

	return out
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
