// Package ref holds the reference lists (airports and flights), and the providers that
// fetch them. Providers only read; snapshots and published copies are for shipping a
// log somewhere else, not a store of record.
package ref

import(
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	fpc "github.com/netbeen/flight-path-chronicle"
	"github.com/netbeen/flight-path-chronicle/log"
)

type AirportProvider interface {
	ListAirports(ctx context.Context) ([]fpc.Airport, error)
}

type FlightProvider interface {
	ListFlights(ctx context.Context) ([]fpc.Flight, error)
}

// Provider is a source for both lists; most sources are.
type Provider interface {
	AirportProvider
	FlightProvider
	String() string
}

// ByCode is the one-airport lookup; a miss is (zero, false, nil).
func ByCode(ctx context.Context, ap AirportProvider, code string) (fpc.Airport, bool, error) {
	airports,err := ap.ListAirports(ctx)
	if err != nil { return fpc.Airport{}, false, err }
	for _,a := range airports {
		if a.Code == code { return a, true, nil }
	}
	return fpc.Airport{}, false, nil
}

// Dataset is one consistent pair of lists. Treat it as immutable once loaded; reloads
// build a new one.
type Dataset struct {
	Airports []fpc.Airport `json:"airports"`
	Flights  []fpc.Flight  `json:"flights"`
	Source   string        `json:"source,omitempty"`
	Loaded   time.Time     `json:"loaded"`
}

func (ds Dataset)String() string {
	return fmt.Sprintf("%d airports, %d flights, from %s @%s", len(ds.Airports), len(ds.Flights),
		ds.Source, ds.Loaded.Format(time.RFC3339))
}

func (ds Dataset)Index() fpc.AirportIndex { return fpc.NewAirportIndex(ds.Airports) }

// Version changes whenever the content might have; it keys caches of derived views.
func (ds Dataset)Version() string {
	return fmt.Sprintf("%s/%d/%d/%d", ds.Source, ds.Loaded.UnixNano(), len(ds.Airports), len(ds.Flights))
}

// {{{ Load

// Load fetches both lists concurrently. Airports come back sorted by code; flights
// keep their source order, which is the order curvature gets assigned in.
func Load(ctx context.Context, ap AirportProvider, fp FlightProvider, lg *log.Logger) (Dataset, error) {
	ds := Dataset{Source:sourceName(ap, fp)}

	g,gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		airports,err := ap.ListAirports(gctx)
		if err != nil { return fmt.Errorf("ref: airports: %w", err) }
		ds.Airports = airports
		return nil
	})
	g.Go(func() error {
		flights,err := fp.ListFlights(gctx)
		if err != nil { return fmt.Errorf("ref: flights: %w", err) }
		ds.Flights = flights
		return nil
	})
	if err := g.Wait(); err != nil {
		lg.Errorf("load from %s: %v", ds.Source, err)
		return Dataset{}, err
	}

	sort.SliceStable(ds.Airports, func(i, j int) bool { return ds.Airports[i].Code < ds.Airports[j].Code })
	ds.Loaded = time.Now().UTC()

	lg.Info("dataset loaded", "source", ds.Source, "airports", len(ds.Airports),
		"flights", len(ds.Flights))

	for _,p := range Validate(ds.Airports, ds.Flights) {
		lg.Warn("dataset problem", "kind", string(p.Kind), "detail", p.Detail)
	}

	return ds, nil
}

func sourceName(ap AirportProvider, fp FlightProvider) string {
	name := func(x interface{}) string {
		if s,ok := x.(fmt.Stringer); ok { return s.String() }
		return fmt.Sprintf("%T", x)
	}
	a,f := name(ap), name(fp)
	if a == f { return a }
	return a + "+" + f
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
