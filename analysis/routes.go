package analysis

import (
	"fmt"

	fpc "github.com/netbeen/flight-path-chronicle"
	"github.com/netbeen/flight-path-chronicle/report"
)

func init() {
	report.HandleReport("routes", RoutesReporter, "Each ordered route: flights, distance and direction")
}

// RoutesReporter has one row per drawable route, in first-flown order. The curvature
// column is the outermost arc on that route.
func RoutesReporter(r *report.Report, flights []fpc.Flight, idx fpc.AirportIndex) error {
	airports := []fpc.Airport{}
	for _,code := range idx.Codes() { airports = append(airports, idx[code]) }

	pfs := fpc.ProcessFlights(flights, airports)
	r.I["[C] Flights drawn"] = len(pfs)
	r.I["[C] Flights not drawn (unknown airport)"] = len(flights) - len(pfs)

	type routeRow struct {
		pf    fpc.ProcessedFlight
		count int
	}
	rows := []*routeRow{}
	byRoute := map[string]*routeRow{}
	for _,pf := range pfs {
		key := pf.Route()
		if rr,exists := byRoute[key]; exists {
			rr.count++
			rr.pf.Curvature = pf.Curvature
			continue
		}
		rr := &routeRow{pf:pf, count:1}
		byRoute[key] = rr
		rows = append(rows, rr)
	}

	r.SetHeaders("Route", "From", "To", "Flights", "Distance (km)", "Direction", "Color", "Curvature",
		"Dateline")
	for _,rr := range rows {
		dateline := ""
		if m := rr.pf.ArrivalAirportModified; m != nil { dateline = fmt.Sprintf("%.4f", m.Longitude) }
		r.AddRow(
			rr.pf.Route(),
			idx.NameOrCode(rr.pf.DepartureAirport),
			idx.NameOrCode(rr.pf.ArrivalAirport),
			fmt.Sprintf("%d", rr.count),
			km(rr.pf.Distance),
			string(rr.pf.Direction),
			rr.pf.Color,
			fmt.Sprintf("%.2f", rr.pf.Curvature),
			dateline,
		)
		for i:=0; i<rr.count; i++ { r.AddDistance(rr.pf.Distance) }
	}
	r.I["[D] Distinct routes"] = len(rows)

	return nil
}
