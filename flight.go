package chronicle

import(
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrBadTime is wrapped by every helper that has to parse a flight's timestamps.
var ErrBadTime = errors.New("malformed flight time")

// Flight is one leg from the log. Times stay in the ISO-8601 form they were written in.
type Flight struct {
	FlightNumber     string `json:"flightNumber"`
	DepartureAirport string `json:"departureAirport"`
	ArrivalAirport   string `json:"arrivalAirport"`
	DepartureTime    string `json:"departureTime"`
	ArrivalTime      string `json:"arrivalTime,omitempty"`
}

func (f Flight)String() string {
	return fmt.Sprintf("%s %s [%s]", f.FlightNumber, f.Route(), f.DepartureTime)
}

// Route is the ordered grouping key; A-B and B-A are different routes.
func (f Flight)Route() string { return RouteKey(f.DepartureAirport, f.ArrivalAirport) }

func RouteKey(dep, arr string) string { return dep + "-" + arr }

// Airline is the two character carrier prefix of the flight number (CA1510 -> CA).
func (f Flight)Airline() string {
	if len(f.FlightNumber) < 2 { return f.FlightNumber }
	return strings.ToUpper(f.FlightNumber[:2])
}

// {{{ ParseFlightTime

// Layouts we see in hand-written logs. Times without a zone are taken as written, in UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func ParseFlightTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _,layout := range timeLayouts {
		if t,err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadTime, s)
}

// }}}

func (f Flight)DepartureTimeUTC() (time.Time, error) {
	t,err := ParseFlightTime(f.DepartureTime)
	if err != nil { return t, fmt.Errorf("flight %s: departure: %w", f.FlightNumber, err) }
	return t, nil
}

// ArrivalTimeUTC reports ok=false when no arrival time was logged.
func (f Flight)ArrivalTimeUTC() (t time.Time, ok bool, err error) {
	if f.ArrivalTime == "" { return time.Time{}, false, nil }
	t,err = ParseFlightTime(f.ArrivalTime)
	if err != nil { return t, false, fmt.Errorf("flight %s: arrival: %w", f.FlightNumber, err) }
	return t, true, nil
}

func (f Flight)Year() (string, error) {
	t,err := f.DepartureTimeUTC()
	if err != nil { return "", err }
	return strconv.Itoa(t.Year()), nil
}

// Yay, sorting funtime. Unparseable times sort last, otherwise newest first.
type flightsByRecency struct {
	flights []Flight
	times   []time.Time
}
func (a flightsByRecency) Len() int      { return len(a.flights) }
func (a flightsByRecency) Swap(i, j int) {
	a.flights[i], a.flights[j] = a.flights[j], a.flights[i]
	a.times[i], a.times[j] = a.times[j], a.times[i]
}
func (a flightsByRecency) Less(i, j int) bool { return a.times[i].After(a.times[j]) }

func SortNewestFirst(in []Flight) []Flight {
	out := append([]Flight{}, in...)
	times := make([]time.Time, len(out))
	for i,f := range out {
		times[i],_ = f.DepartureTimeUTC() // zero time on error, so it sorts last
	}
	sort.Stable(flightsByRecency{out, times})
	return out
}
