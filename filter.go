package chronicle

import(
	"fmt"
	"strings"
	"time"
)

// Filter is the UI's filter state: selected year, selected airline, and the timeline
// cursor. Empty (or "all") fields don't constrain anything.
//
// Until is an inclusive instant: a flight departing exactly then matches, one a nanosecond
// later does not. It is not widened to the end of its day here; report.ParseFilter does
// that for a bare YYYY-MM-DD cursor.
type Filter struct {
	Year    string     `json:"year,omitempty"`
	Airline string     `json:"airline,omitempty"`
	Until   *time.Time `json:"until,omitempty"` // timeline cursor; nil shows everything
}

func isAll(s string) bool { return s == "" || strings.EqualFold(s, "all") }

func (fl Filter)IsNil() bool { return isAll(fl.Year) && isAll(fl.Airline) && fl.Until == nil }

// Key is a stable string form, for memoising derived views.
func (fl Filter)Key() string {
	until := ""
	if fl.Until != nil { until = fl.Until.UTC().Format(time.RFC3339) }
	return fmt.Sprintf("y=%s|a=%s|u=%s", fl.Year, strings.ToUpper(fl.Airline), until)
}

func (fl Filter)String() string {
	if fl.IsNil() { return "all flights" }
	str := ""
	if !isAll(fl.Year) { str += " year:" + fl.Year }
	if !isAll(fl.Airline) { str += " airline:" + fl.Airline }
	if fl.Until != nil { str += " until:" + fl.Until.Format("2006-01-02") }
	return strings.TrimSpace(str)
}

// Matches returns an error (and false) when it needs the departure time but can't parse it.
func (fl Filter)Matches(f Flight) (bool, error) {
	if !isAll(fl.Airline) && !strings.EqualFold(f.Airline(), fl.Airline) {
		return false, nil
	}
	if isAll(fl.Year) && fl.Until == nil {
		return true, nil
	}

	t,err := f.DepartureTimeUTC()
	if err != nil { return false, err }

	if !isAll(fl.Year) && fmt.Sprintf("%d", t.Year()) != fl.Year {
		return false, nil
	}
	if fl.Until != nil && t.After(*fl.Until) {
		return false, nil
	}
	return true, nil
}

// Apply keeps matching flights, in order. Flights with malformed dates never match a
// date constraint; the first such failure comes back as the error, next to the result.
func (fl Filter)Apply(flights []Flight) ([]Flight, error) {
	out := []Flight{}
	var firstErr error
	for _,f := range flights {
		ok,err := fl.Matches(f)
		if err != nil && firstErr == nil { firstErr = err }
		if ok { out = append(out, f) }
	}
	return out, firstErr
}

// FlightsAtAirport lists the flights touching an airport, newest first.
func FlightsAtAirport(flights []Flight, code string) []Flight {
	related := []Flight{}
	for _,f := range flights {
		if f.DepartureAirport == code || f.ArrivalAirport == code {
			related = append(related, f)
		}
	}
	return SortNewestFirst(related)
}
