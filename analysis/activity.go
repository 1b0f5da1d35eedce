package analysis

import (
	"fmt"
	"sort"

	fpc "github.com/netbeen/flight-path-chronicle"
	"github.com/netbeen/flight-path-chronicle/report"
)

func init() {
	report.HandleReport("activity", ActivityReporter, "Departures plus arrivals per airport")
}

// Yay, sorting funtime
type byActivity struct {
	codes    []string
	activity map[string]int
}
func (a byActivity) Len() int      { return len(a.codes) }
func (a byActivity) Swap(i, j int) { a.codes[i], a.codes[j] = a.codes[j], a.codes[i] }
func (a byActivity) Less(i, j int) bool {
	if a.activity[a.codes[i]] != a.activity[a.codes[j]] {
		return a.activity[a.codes[i]] > a.activity[a.codes[j]]
	}
	return a.codes[i] < a.codes[j]
}

func ActivityReporter(r *report.Report, flights []fpc.Flight, idx fpc.AirportIndex) error {
	activity := fpc.AirportActivity(flights)

	codes := []string{}
	for code,_ := range activity { codes = append(codes, code) }
	sort.Sort(byActivity{codes, activity})

	r.SetHeaders("Code", "Airport", "City", "Country", "Activity", "MarkerRadius")
	for _,code := range codes {
		a,known := idx.Lookup(code)
		if !known {
			r.I["[C] Unknown airport codes"]++
			a = fpc.Airport{Code:code, Name:code}
		}
		r.AddRow(code, a.Name, a.City, a.Country, fmt.Sprintf("%d", activity[code]),
			fmt.Sprintf("%.1f", fpc.MarkerRadius(activity[code])))
	}
	r.I["[C] Airports visited"] = len(codes)

	return nil
}
