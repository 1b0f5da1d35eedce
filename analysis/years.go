package analysis

import (
	"fmt"

	fpc "github.com/netbeen/flight-path-chronicle"
	"github.com/netbeen/flight-path-chronicle/report"
)

func init() {
	report.HandleReport("years", YearsReporter, "Flights and distance per year")
	report.HandleReport("airlines", AirlinesReporter, "Flights and distance per airline")
}

// YearsReporter rows run newest first, to match the year picker.
func YearsReporter(r *report.Report, flights []fpc.Flight, idx fpc.AirportIndex) error {
	years,err := fpc.AvailableYears(flights)
	if err != nil {
		r.S["[C] Undated flights"] = err.Error()
	}

	t := newTally()
	for _,f := range flights {
		y,err := f.Year()
		if err != nil {
			r.I["[C] Flights with bad dates"]++
			continue
		}
		t.Add(y, routeKM(idx, f))
	}

	r.SetHeaders("Year", "Flights", "Distance (km)")
	for _,y := range years {
		r.AddRow(y, fmt.Sprintf("%d", t.n[y]), km(t.km[y]))
	}

	return nil
}

func AirlinesReporter(r *report.Report, flights []fpc.Flight, idx fpc.AirportIndex) error {
	t := newTally()
	for _,f := range flights {
		if code := f.Airline(); code != "" {
			t.Add(code, routeKM(idx, f))
		} else {
			r.I["[C] Flights with no flight number"]++
		}
	}

	r.SetHeaders("Code", "Airline", "Flights", "Distance (km)")
	for _,code := range t.ByCount() {
		r.AddRow(code, fpc.AirlineName(code), fmt.Sprintf("%d", t.n[code]), km(t.km[code]))
	}
	r.I["[C] Airlines flown"] = len(t.order)

	return nil
}
