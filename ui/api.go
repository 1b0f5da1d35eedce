package ui

import(
	"math"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	fpc "github.com/netbeen/flight-path-chronicle"
	"github.com/netbeen/flight-path-chronicle/ref"
)

// {{{ HealthzHandler, ReloadHandler

func (s *Server)HealthzHandler(w http.ResponseWriter, r *http.Request) {
	ds := s.Dataset()
	writeJSON(w, map[string]interface{}{
		"status": "ok",
		"dataset": ds.String(),
		"airports": len(ds.Airports),
		"flights": len(ds.Flights),
	}, false)
}

func (s *Server)ReloadHandler(w http.ResponseWriter, r *http.Request) {
	if s.Provider == nil {
		http.Error(w, "no provider configured", http.StatusNotImplemented)
		return
	}
	ds,err := s.Reload(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{"dataset": ds.String()}, false)
}

// }}}

// {{{ AirportsHandler, AirportHandler, AirportFlightsHandler

// AirportsHandler lists the reference airports; the filter doesn't apply to these.
func (s *Server)AirportsHandler(ds ref.Dataset, opt UIOptions, w http.ResponseWriter, r *http.Request) {
	writeJSON(w, limit(ds.Airports, opt.Limit), opt.Pretty)
}

type AirportDetail struct {
	fpc.Airport
	Activity     int     `json:"activity"`
	MarkerRadius float64 `json:"markerRadius"`
}

func lookupAirport(ds ref.Dataset, w http.ResponseWriter, r *http.Request) (fpc.Airport, bool) {
	code := strings.ToUpper(chi.URLParam(r, "code"))
	a,exists := ds.Index().Lookup(code)
	if !exists {
		http.Error(w, "airport '"+code+"' not known", http.StatusNotFound)
	}
	return a, exists
}

func (s *Server)AirportHandler(ds ref.Dataset, opt UIOptions, w http.ResponseWriter, r *http.Request) {
	a,ok := lookupAirport(ds, w, r)
	if !ok { return }

	n := s.view(ds, opt, w).Activity[a.Code]
	writeJSON(w, AirportDetail{Airport:a, Activity:n, MarkerRadius:fpc.MarkerRadius(n)}, opt.Pretty)
}

// AirportFlightsHandler is the sidebar list: flights touching the airport, newest first.
func (s *Server)AirportFlightsHandler(ds ref.Dataset, opt UIOptions, w http.ResponseWriter, r *http.Request) {
	a,ok := lookupAirport(ds, w, r)
	if !ok { return }

	flights := fpc.FlightsAtAirport(s.view(ds, opt, w).Flights, a.Code)
	writeJSON(w, limit(flights, opt.Limit), opt.Pretty)
}

// }}}
// {{{ FlightsHandler, ProcessedFlightsHandler

func (s *Server)FlightsHandler(ds ref.Dataset, opt UIOptions, w http.ResponseWriter, r *http.Request) {
	flights := s.view(ds, opt, w).Flights
	if opt.Recent { flights = fpc.SortNewestFirst(flights) }
	writeJSON(w, limit(flights, opt.Limit), opt.Pretty)
}

func (s *Server)ProcessedFlightsHandler(ds ref.Dataset, opt UIOptions, w http.ResponseWriter, r *http.Request) {
	writeJSON(w, limit(s.view(ds, opt, w).Processed, opt.Limit), opt.Pretty)
}

// }}}
// {{{ StatsHandler, ActivityHandler

func (s *Server)StatsHandler(ds ref.Dataset, opt UIOptions, w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.view(ds, opt, w).Stats, opt.Pretty)
}

type ActivityRow struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Activity     int     `json:"activity"`
	MarkerRadius float64 `json:"markerRadius"`
	Known        bool    `json:"known"`
}

// ActivityHandler is busiest first, then by code.
func (s *Server)ActivityHandler(ds ref.Dataset, opt UIOptions, w http.ResponseWriter, r *http.Request) {
	idx := ds.Index()
	rows := []ActivityRow{}
	for code,n := range s.view(ds, opt, w).Activity {
		_,known := idx.Lookup(code)
		rows = append(rows, ActivityRow{
			Code: code,
			Name: idx.NameOrCode(code),
			Activity: n,
			MarkerRadius: fpc.MarkerRadius(n),
			Known: known,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Activity != rows[j].Activity { return rows[i].Activity > rows[j].Activity }
		return rows[i].Code < rows[j].Code
	})

	writeJSON(w, limit(rows, opt.Limit), opt.Pretty)
}

// }}}
// {{{ FacetsHandler

type AirlineFacet struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Facets struct {
	Years    []string       `json:"years"`
	Airlines []AirlineFacet `json:"airlines"`
	Warning  string         `json:"warning,omitempty"`
}

// FacetsHandler fills the year and airline pickers. It looks at every flight, so the
// pickers don't shrink as you filter.
func (s *Server)FacetsHandler(ds ref.Dataset, opt UIOptions, w http.ResponseWriter, r *http.Request) {
	facets := Facets{Airlines: []AirlineFacet{}}

	years,err := fpc.AvailableYears(ds.Flights)
	facets.Years = years
	if err != nil { facets.Warning = err.Error() }

	for _,code := range fpc.AvailableAirlines(ds.Flights) {
		facets.Airlines = append(facets.Airlines, AirlineFacet{Code:code, Name:fpc.AirlineName(code)})
	}

	writeJSON(w, facets, opt.Pretty)
}

// }}}
// {{{ TimelineHandler

type TimelineResponse struct {
	Start    *time.Time `json:"start,omitempty"`
	End      *time.Time `json:"end,omitempty"`
	Until    *time.Time `json:"until,omitempty"`
	Progress *float64   `json:"progress,omitempty"` // percent, of until (or of &progress=)
	At       *time.Time `json:"at,omitempty"`       // the time at &progress=
}

// TimelineHandler spans the flights picked by year and airline; the until cursor scrubs
// within that, so it isn't applied here.
func (s *Server)TimelineHandler(ds ref.Dataset, opt UIOptions, w http.ResponseWriter, r *http.Request) {
	fl := opt.Filter
	fl.Until = nil

	tr,err := fpc.Timeline(s.View(ds, fl).Flights)
	if err != nil { w.Header().Set("X-Filter-Warning", err.Error()) }

	resp := TimelineResponse{}
	if !tr.IsNil() {
		resp.Start, resp.End = &tr.Start, &tr.End

		if until := opt.Filter.Until; until != nil {
			p := tr.Progress(*until)
			resp.Until, resp.Progress = until, &p
		}
		if pStr := r.FormValue("progress"); pStr != "" {
			if p,err := parsePercent(pStr); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			} else {
				p = math.Max(0, math.Min(100, p))
				at := tr.At(p)
				resp.Progress, resp.At = &p, &at
			}
		}
	}

	writeJSON(w, resp, opt.Pretty)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
