// Package analysis holds the built-in reports. Import it for its side effect of populating
// the report registry.
package analysis

import(
	"fmt"
	"sort"

	fpc "github.com/netbeen/flight-path-chronicle"
)

func km(f float64) string { return fmt.Sprintf("%.0f", f) }

// tally is a count plus a distance, per key, in first-seen order.
type tally struct {
	order []string
	n     map[string]int
	km    map[string]float64
}

func newTally() *tally { return &tally{n:map[string]int{}, km:map[string]float64{}} }

func (t *tally)Add(key string, km float64) {
	if _,exists := t.n[key]; !exists { t.order = append(t.order, key) }
	t.n[key]++
	t.km[key] += km
}

// ByCount is descending by count, stable on first-seen order.
func (t *tally)ByCount() []string {
	keys := append([]string{}, t.order...)
	sort.SliceStable(keys, func(i, j int) bool { return t.n[keys[i]] > t.n[keys[j]] })
	return keys
}

func routeKM(idx fpc.AirportIndex, f fpc.Flight) float64 {
	d,_ := idx.RouteDistanceKM(f.DepartureAirport, f.ArrivalAirport)
	return d
}
