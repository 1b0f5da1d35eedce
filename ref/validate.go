package ref

import(
	"fmt"
	"math"

	fpc "github.com/netbeen/flight-path-chronicle"
)

type ProblemKind string
const(
	DuplicateAirport  ProblemKind = "duplicate-airport"
	BadCoordinates    ProblemKind = "bad-coordinates"
	UnresolvedAirport ProblemKind = "unresolved-airport"
	BadTime           ProblemKind = "bad-time"
	ArrivesBeforeDeparture ProblemKind = "arrives-before-departure"
)

// Problem is advisory. The core copes with all of them (unresolved flights are just left
// off the map), but the owner of the log probably wants to know.
type Problem struct {
	Kind   ProblemKind
	Detail string
}

func (p Problem)String() string { return fmt.Sprintf("[%s] %s", p.Kind, p.Detail) }

func Validate(airports []fpc.Airport, flights []fpc.Flight) []Problem {
	problems := []Problem{}
	add := func(k ProblemKind, format string, args ...interface{}) {
		problems = append(problems, Problem{k, fmt.Sprintf(format, args...)})
	}

	seen := map[string]bool{}
	for _,a := range airports {
		if seen[a.Code] {
			add(DuplicateAirport, "%s appears more than once", a.Code)
		}
		seen[a.Code] = true

		if math.IsNaN(a.Latitude) || math.Abs(a.Latitude) > 90 ||
			math.IsNaN(a.Longitude) || math.Abs(a.Longitude) > 180 {
			add(BadCoordinates, "%s", a)
		}
	}

	for i,f := range flights {
		for _,code := range []string{f.DepartureAirport, f.ArrivalAirport} {
			if !seen[code] {
				add(UnresolvedAirport, "flight[%d] %s: unknown airport %q", i, f.FlightNumber, code)
			}
		}

		dep,err := f.DepartureTimeUTC()
		if err != nil {
			add(BadTime, "flight[%d] %v", i, err)
			continue
		}
		// Arrival times are local to the arrival airport, so only a zoned time can be
		// compared against the departure.
		if arr,ok,err := f.ArrivalTimeUTC(); err != nil {
			add(BadTime, "flight[%d] %v", i, err)
		} else if ok && arr.Before(dep) && hasZone(f.ArrivalTime) && hasZone(f.DepartureTime) {
			add(ArrivesBeforeDeparture, "flight[%d] %s", i, f)
		}
	}

	return problems
}

func hasZone(s string) bool {
	if len(s) < 6 { return false }
	if s[len(s)-1] == 'Z' { return true }
	tail := s[len(s)-6:]
	return (tail[0] == '+' || tail[0] == '-') && tail[3] == ':'
}
