package analysis

import (
	"fmt"

	fpc "github.com/netbeen/flight-path-chronicle"
	"github.com/netbeen/flight-path-chronicle/report"
)

func init() {
	report.HandleReport("summary", SummaryReporter, "Headline statistics for the selected flights")
}

func SummaryReporter(r *report.Report, flights []fpc.Flight, idx fpc.AirportIndex) error {
	airports := []fpc.Airport{}
	for _,code := range idx.Codes() { airports = append(airports, idx[code]) }

	stats := fpc.CalculateFlightStatistics(flights, airports)

	r.SetHeaders("Statistic", "Value", "Detail")
	r.AddRow("Total flights", fmt.Sprintf("%d", stats.TotalFlights), "")
	r.AddRow("Total distance (km)", fmt.Sprintf("%d", stats.TotalDistance), "")

	for i,d := range stats.TopDestinations {
		r.AddRow(fmt.Sprintf("Top destination #%d", i+1), d.Code, fmt.Sprintf("%s, %d flights", d.Name, d.Count))
	}
	if a := stats.TopAirline; a != nil {
		r.AddRow("Top airline", a.Code, fmt.Sprintf("%s, %d flights", a.Name, a.Count))
	}
	if l := stats.LongestFlight; l != nil {
		r.AddRow("Longest flight", l.From+"-"+l.To, fmt.Sprintf("%dkm", l.Distance))
	}
	if s := stats.ShortestFlight; s != nil {
		r.AddRow("Shortest flight", s.From+"-"+s.To, fmt.Sprintf("%dkm", s.Distance))
	}

	unresolved := 0
	for _,f := range flights {
		if d,ok := idx.RouteDistanceKM(f.DepartureAirport, f.ArrivalAirport); ok {
			r.AddDistance(d)
		} else {
			unresolved++
		}
	}
	r.I["[C] Flights with unknown airports"] = unresolved
	r.F["[C] Total distance, km"] = float64(stats.TotalDistance)

	return nil
}
