package chronicle

import(
	"fmt"
	"sort"

	"github.com/skypies/geo"
)

// Airport is immutable reference data, keyed by its (IATA-ish) code.
type Airport struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
}

func (a Airport)String() string {
	return fmt.Sprintf("%s[%s] (%.4f,%.4f)", a.Code, a.Name, a.Latitude, a.Longitude)
}

func (a Airport)Latlong() geo.Latlong { return geo.Latlong{Lat:a.Latitude, Long:a.Longitude} }

func (a Airport)NamedLatlong() geo.NamedLatlong {
	return geo.NamedLatlong{Name:a.Code, Latlong:a.Latlong()}
}

// DistKM is the great-circle distance to another airport.
func (a Airport)DistKM(b Airport) float64 {
	return DistanceKM(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

// Projected returns the airport's position in the continuous [0,360) longitude space.
func (a Airport)Projected() Position {
	return Position{Latitude: a.Latitude, Longitude: NormalizeLongitude(a.Longitude)}
}

// AirportIndex resolves codes in O(1). A miss is not an error.
type AirportIndex map[string]Airport

func NewAirportIndex(airports []Airport) AirportIndex {
	idx := make(AirportIndex, len(airports))
	for _,a := range airports {
		idx[a.Code] = a
	}
	return idx
}

func (idx AirportIndex)Lookup(code string) (Airport, bool) {
	a,exists := idx[code]
	return a, exists
}

// NameOrCode is what the UI shows for an airport that may not resolve.
func (idx AirportIndex)NameOrCode(code string) string {
	if a,exists := idx[code]; exists && a.Name != "" { return a.Name }
	return code
}

// RouteDistanceKM is false when either end is unknown.
func (idx AirportIndex)RouteDistanceKM(dep, arr string) (float64, bool) {
	from,ok1 := idx[dep]
	to,ok2 := idx[arr]
	if !ok1 || !ok2 { return 0, false }
	return from.DistKM(to), true
}

func (idx AirportIndex)Codes() []string {
	codes := []string{}
	for k,_ := range idx { codes = append(codes, k) }
	sort.Strings(codes)
	return codes
}
