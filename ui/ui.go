// Package ui serves the flight map's data over HTTP: filtered views of the log, the
// statistics panel, GeoJSON and PDF renderings, and the report registry.
package ui

import(
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/cors"

	fpc "github.com/netbeen/flight-path-chronicle"
	"github.com/netbeen/flight-path-chronicle/log"
	"github.com/netbeen/flight-path-chronicle/ref"
)

var(
	ViewCacheSize = 64
	ViewCacheTTL = time.Hour
)

// View is everything derived from one (dataset, filter) pair. Shared between requests;
// never modify one.
type View struct {
	Filter    fpc.Filter
	Flights   []fpc.Flight
	Processed []fpc.ProcessedFlight
	Activity  map[string]int
	Stats     fpc.FlightStatistics
	Warning   string // set when the filter had to skip undatable flights
}

// Server holds the current dataset. Reloads build a new dataset and swap it in; requests
// already running keep the one they started with.
type Server struct {
	Provider       ref.Provider // for Reload; may be nil
	AllowedOrigins []string
	Log            *log.Logger

	mu    sync.RWMutex
	ds    ref.Dataset
	views *expirable.LRU[string, *View]
}

func NewServer(ds ref.Dataset, p ref.Provider, lg *log.Logger) *Server {
	return &Server{
		Provider: p,
		AllowedOrigins: []string{"*"},
		Log: lg,
		ds: ds,
		views: expirable.NewLRU[string, *View](ViewCacheSize, nil, ViewCacheTTL),
	}
}

// {{{ s.Dataset, Swap, Reload

func (s *Server)Dataset() ref.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds
}

func (s *Server)Swap(ds ref.Dataset) {
	s.mu.Lock()
	s.ds = ds
	s.mu.Unlock()

	// Old keys can't be hit again (the version changed); drop them now rather than at expiry
	s.views.Purge()
	s.Log.Info("dataset swapped", "dataset", ds.String())
}

func (s *Server)Reload(ctx context.Context) (ref.Dataset, error) {
	if s.Provider == nil { return ref.Dataset{}, fmt.Errorf("ui: no provider to reload from") }

	ds,err := ref.Load(ctx, s.Provider, s.Provider, s.Log)
	if err != nil { return ref.Dataset{}, err }

	s.Swap(ds)
	return ds, nil
}

// }}}
// {{{ s.View

func (s *Server)View(ds ref.Dataset, fl fpc.Filter) *View {
	key := ds.Version() + "|" + fl.Key()
	if v,exists := s.views.Get(key); exists { return v }

	flights,err := fl.Apply(ds.Flights)
	v := &View{
		Filter: fl,
		Flights: flights,
		Processed: fpc.ProcessFlights(flights, ds.Airports),
		Activity: fpc.AirportActivity(flights),
		Stats: fpc.CalculateFlightStatistics(flights, ds.Airports),
	}
	if err != nil {
		v.Warning = err.Error()
		s.Log.Warn("filter skipped flights", "filter", fl.String(), "err", err)
	}

	s.views.Add(key, v)
	return v
}

// }}}
// {{{ s.Router

func (s *Server)Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.HealthzHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/airports", s.handle(s.AirportsHandler))
		r.Get("/airports/{code}", s.handle(s.AirportHandler))
		r.Get("/airports/{code}/flights", s.handle(s.AirportFlightsHandler))
		r.Get("/flights", s.handle(s.FlightsHandler))
		r.Get("/flights/processed", s.handle(s.ProcessedFlightsHandler))
		r.Get("/stats", s.handle(s.StatsHandler))
		r.Get("/activity", s.handle(s.ActivityHandler))
		r.Get("/facets", s.handle(s.FacetsHandler))
		r.Get("/timeline", s.handle(s.TimelineHandler))

		r.Get("/routes.geojson", s.handle(s.RoutesGeoJSONHandler))
		r.Get("/map.pdf", s.handle(s.MapPDFHandler))

		r.Get("/report", s.handle(s.ReportHandler))
		r.Get("/reports", s.ReportsHandler)

		r.Post("/reload", s.ReloadHandler)
	})

	c := cors.New(cors.Options{
		AllowedOrigins: s.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(r)
}

func (s *Server)requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		tStart := time.Now()
		next.ServeHTTP(ww, r)
		s.Log.Debug("http", "method", r.Method, "url", r.URL.String(), "status", ww.Status(),
			"bytes", ww.BytesWritten(), "elapsed", time.Since(tStart))
	})
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
