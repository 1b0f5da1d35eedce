package chronicle

import(
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
)

const NumTopDestinations = 5

type DestinationCount struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type AirlineCount struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type RouteDistance struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance int    `json:"distance"` // km, rounded
}

func (rd RouteDistance)String() string {
	return fmt.Sprintf("%s -> %s (%dkm)", rd.From, rd.To, rd.Distance)
}

// FlightStatistics is recomputed per filter change. Pointer fields are nil when the
// flight set has nothing to report; callers must handle their absence.
type FlightStatistics struct {
	TotalFlights    int                `json:"totalFlights"`
	TotalDistance   int                `json:"totalDistance"` // km, rounded
	TopDestinations []DestinationCount `json:"topDestinations"`
	TopAirline      *AirlineCount      `json:"topAirline,omitempty"`
	LongestFlight   *RouteDistance     `json:"longestFlight,omitempty"`
	ShortestFlight  *RouteDistance     `json:"shortestFlight,omitempty"`
}

// {{{ counter

// counter tallies keys and remembers first-seen order, so ranking ties are deterministic.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter { return &counter{order:[]string{}, counts:map[string]int{}} }

func (c *counter)Inc(k string) {
	if _,exists := c.counts[k]; !exists { c.order = append(c.order, k) }
	c.counts[k]++
}

// Ranked is descending by count; ties keep first-seen order.
func (c *counter)Ranked() []string {
	keys := append([]string{}, c.order...)
	sort.SliceStable(keys, func(i, j int) bool { return c.counts[keys[i]] > c.counts[keys[j]] })
	return keys
}

// }}}

// {{{ CalculateFlightStatistics

func CalculateFlightStatistics(flights []Flight, airports []Airport) FlightStatistics {
	idx := NewAirportIndex(airports)
	stats := FlightStatistics{
		TotalFlights: len(flights),
		TopDestinations: []DestinationCount{},
	}

	destinations := newCounter()
	airlines := newCounter()
	totalKM := 0.0
	longestKM, shortestKM := 0.0, 0.0

	for _,f := range flights {
		destinations.Inc(f.ArrivalAirport)
		if code := f.Airline(); code != "" { airlines.Inc(code) }

		km,ok := idx.RouteDistanceKM(f.DepartureAirport, f.ArrivalAirport)
		if !ok { continue }
		totalKM += km

		rd := RouteDistance{From:f.DepartureAirport, To:f.ArrivalAirport, Distance:int(math.Round(km))}
		if stats.LongestFlight == nil || km > longestKM {
			longest := rd
			stats.LongestFlight, longestKM = &longest, km
		}
		if stats.ShortestFlight == nil || km < shortestKM {
			shortest := rd
			stats.ShortestFlight, shortestKM = &shortest, km
		}
	}

	stats.TotalDistance = int(math.Round(totalKM))

	for i,code := range destinations.Ranked() {
		if i >= NumTopDestinations { break }
		stats.TopDestinations = append(stats.TopDestinations, DestinationCount{
			Code: code,
			Name: idx.NameOrCode(code),
			Count: destinations.counts[code],
		})
	}

	if ranked := airlines.Ranked(); len(ranked) > 0 {
		code := ranked[0]
		stats.TopAirline = &AirlineCount{Code:code, Name:AirlineName(code), Count:airlines.counts[code]}
	}

	return stats
}

// }}}

// {{{ AvailableYears, AvailableAirlines

// AvailableYears lists distinct departure years, newest first. Flights with malformed
// times are left out of the list, and reported via the error (the first one found).
func AvailableYears(flights []Flight) ([]string, error) {
	seen := map[int]bool{}
	years := []int{}
	var firstErr error

	for _,f := range flights {
		t,err := f.DepartureTimeUTC()
		if err != nil {
			if firstErr == nil { firstErr = err }
			continue
		}
		if !seen[t.Year()] {
			seen[t.Year()] = true
			years = append(years, t.Year())
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	out := []string{}
	for _,y := range years { out = append(out, strconv.Itoa(y)) }

	return out, firstErr
}

func AvailableAirlines(flights []Flight) []string {
	seen := map[string]bool{}
	out := []string{}
	for _,f := range flights {
		if code := f.Airline(); code != "" && !seen[code] {
			seen[code] = true
			out = append(out, code)
		}
	}
	sort.Strings(out)
	return out
}

// }}}

// IsBadTime is true for errors caused by an unparseable flight timestamp.
func IsBadTime(err error) bool { return errors.Is(err, ErrBadTime) }

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
