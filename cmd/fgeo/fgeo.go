package main

// fgeo shows how one route gets drawn. Endpoints are airport codes from the builtin list,
// or "lat,long" strings:
//
//  fgeo PEK SEA
//  fgeo -curve=0.3 "31.1443, 121.8083" SIN

import(
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/skypies/geo"

	fpc "github.com/netbeen/flight-path-chronicle"
	"github.com/netbeen/flight-path-chronicle/curve"
	"github.com/netbeen/flight-path-chronicle/ref"
)

var(
	fVerbosity int
	fCurvature float64
	fSegments int
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "verbosity level")
	flag.Float64Var(&fCurvature, "curve", 0.15, "curvature of the arc")
	flag.IntVar(&fSegments, "segments", 8, "segments to print, with -v")
	flag.Parse()
}

func endpoint(idx fpc.AirportIndex, in string) fpc.Airport {
	if a,exists := idx.Lookup(strings.ToUpper(in)); exists {
		return a
	}
	pos := geo.NewLatlong(in)
	if pos.IsNil() {
		log.Fatalf("'%s': not a known airport, nor a lat,long", in)
	}
	return fpc.Airport{Code:"("+in+")", Name:in, Latitude:pos.Lat, Longitude:pos.Long}
}

func main() {
	if len(flag.Args()) != 2 {
		log.Fatal("usage: fgeo FROM TO   (airport codes, or \"lat,long\")\n")
	}

	idx := fpc.NewAirportIndex(ref.NewBuiltinProvider().Airports)
	dep,arr := endpoint(idx, flag.Arg(0)), endpoint(idx, flag.Arg(1))

	modified := fpc.DatelineCorrection(dep, arr)
	start,end := fpc.ProjectedEndpoints(dep, arr, modified)
	control := curve.ControlPoint(start, end, fCurvature)
	dir := fpc.RouteDirection(dep, arr)

	fmt.Printf(">>>> %s -> %s\n", dep, arr)
	fmt.Printf("  << distance  %.0fkm\n", fpc.DistanceKM(dep.Latitude, dep.Longitude, arr.Latitude, arr.Longitude))
	fmt.Printf("  << direction %s (%s)\n", dir, dir.Color())
	fmt.Printf("  << start     (%.4f, %.4f)\n", start.Latitude, start.Longitude)
	fmt.Printf("  << end       (%.4f, %.4f)\n", end.Latitude, end.Longitude)
	if modified != nil {
		fmt.Printf("  << dateline  arrival moved to lng %.4f\n", modified.Longitude)
	}
	fmt.Printf("  << control   (%.4f, %.4f) at curvature %.2f\n", control.Latitude, control.Longitude, fCurvature)

	if fVerbosity > 0 && fSegments > 0 {
		for i:=0; i<=fSegments; i++ {
			p := curve.Bezier(start, control, end, float64(i)/float64(fSegments))
			fmt.Printf("     {pos:{lat: %.7f , lng:  %.7f}},\n", p.Latitude, p.Longitude)
		}
	}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
