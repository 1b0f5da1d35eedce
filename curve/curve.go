// Package curve turns processed flights into drawable arcs: a quadratic Bézier between the
// projected endpoints, bent sideways by the flight's curvature.
package curve

import(
	geo "github.com/paulmach/go.geo"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"

	fpc "github.com/netbeen/flight-path-chronicle"
)

const DefaultSegments = 32

func toPoint(p fpc.Position) *geo.Point { return geo.NewPoint(p.Longitude, p.Latitude) }
func toPosition(p *geo.Point) fpc.Position { return fpc.Position{Latitude:p.Y(), Longitude:p.X()} }

// ControlPoint is the midpoint pushed out along the perpendicular (-dy,dx) of end-start,
// scaled by curvature. The perpendicular flips when the endpoints swap, so A-B and B-A
// bulge on opposite sides even though both carry positive curvature.
func ControlPoint(start, end fpc.Position, curvature float64) fpc.Position {
	s,e := toPoint(start), toPoint(end)
	mid := s.Clone().Add(e).Scale(0.5)
	d := e.Clone().Subtract(s)
	perp := geo.NewPoint(-d.Y(), d.X())
	return toPosition(mid.Add(perp.Scale(curvature)))
}

// Side is positive when p lies left of the directed line start->end, negative when right.
func Side(start, end, p fpc.Position) float64 {
	return (end.Longitude-start.Longitude)*(p.Latitude-start.Latitude) -
		(end.Latitude-start.Latitude)*(p.Longitude-start.Longitude)
}

// Bezier evaluates the quadratic curve at t in [0,1].
func Bezier(start, control, end fpc.Position, t float64) fpc.Position {
	a, b, c := (1-t)*(1-t), 2*(1-t)*t, t*t
	return fpc.Position{
		Latitude: a*start.Latitude + b*control.Latitude + c*end.Latitude,
		Longitude: a*start.Longitude + b*control.Longitude + c*end.Longitude,
	}
}

// {{{ Arc

// Arc samples the flight's curve into segments+1 points, in the projected (unwrapped
// longitude) space. It is false if either airport doesn't resolve.
func Arc(pf fpc.ProcessedFlight, idx fpc.AirportIndex, segments int) (*geo.Path, bool) {
	dep,ok1 := idx.Lookup(pf.DepartureAirport)
	arr,ok2 := idx.Lookup(pf.ArrivalAirport)
	if !ok1 || !ok2 { return nil, false }

	if segments < 1 { segments = DefaultSegments }

	start,end := fpc.ProjectedEndpoints(dep, arr, pf.ArrivalAirportModified)
	control := ControlPoint(start, end, pf.Curvature)

	path := geo.NewPath()
	for i:=0; i<=segments; i++ {
		path.Push(toPoint(Bezier(start, control, end, float64(i)/float64(segments))))
	}
	return path, true
}

// Arcs are all the drawable arcs, in input order; unresolved flights are skipped.
func Arcs(pfs []fpc.ProcessedFlight, idx fpc.AirportIndex, segments int) []*geo.Path {
	out := []*geo.Path{}
	for _,pf := range pfs {
		if path,ok := Arc(pf, idx, segments); ok {
			out = append(out, path)
		}
	}
	return out
}

// }}}
// {{{ Bounds

// Bounds covers every arc plus the airports, in projected space. The zero bound is
// returned for an empty input.
func Bounds(paths []*geo.Path, airports []fpc.Airport) *geo.Bound {
	var b *geo.Bound
	extend := func(p *geo.Point) {
		if b == nil {
			b = geo.NewBound(p.X(), p.X(), p.Y(), p.Y())
		} else {
			b.Extend(p)
		}
	}

	for _,path := range paths {
		for i:=0; i<path.Length(); i++ {
			extend(path.GetAt(i))
		}
	}
	for _,a := range airports {
		extend(toPoint(a.Projected()))
	}

	if b == nil { return geo.NewBound(0, 0, 0, 0) }
	return b
}

// }}}
// {{{ Simplify

// Simplify drops arc vertices that deviate from the line by less than threshold
// degrees (Douglas-Peucker). The first and last points always survive.
func Simplify(path *geo.Path, threshold float64) *geo.Path {
	if threshold <= 0 || path.Length() < 3 { return path }

	ls := make(orb.LineString, 0, path.Length())
	for i:=0; i<path.Length(); i++ {
		p := path.GetAt(i)
		ls = append(ls, orb.Point{p.X(), p.Y()})
	}

	simplified,ok := simplify.DouglasPeucker(threshold).Simplify(ls).(orb.LineString)
	if !ok { return path }

	out := geo.NewPath()
	for _,p := range simplified {
		out.Push(geo.NewPoint(p[0], p[1]))
	}
	return out
}

// }}}

// ArcLengthDegrees is the planar length of the sampled arc, in projected degrees.
func ArcLengthDegrees(path *geo.Path) float64 { return path.Distance() }

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
