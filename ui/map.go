package ui

import(
	"bytes"
	"fmt"
	"net/http"

	"github.com/netbeen/flight-path-chronicle/curve"
	"github.com/netbeen/flight-path-chronicle/fpdf"
	"github.com/netbeen/flight-path-chronicle/ref"
)

// RoutesGeoJSONHandler is what the map layer draws: a LineString per flight, and a Point
// per visited airport.
func (s *Server)RoutesGeoJSONHandler(ds ref.Dataset, opt UIOptions, w http.ResponseWriter, r *http.Request) {
	v := s.view(ds, opt, w)

	fc := curve.FeatureCollection(v.Processed, ds.Index(), v.Activity, opt.Segments, opt.Simplify)
	jsonBytes,err := fc.MarshalJSON()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.Write(jsonBytes)
}

func (s *Server)MapPDFHandler(ds ref.Dataset, opt UIOptions, w http.ResponseWriter, r *http.Request) {
	v := s.view(ds, opt, w)

	rm := fpdf.RouteMap{
		Title: fmt.Sprintf("Flights (%s): %d flights, %dkm", opt.Filter, v.Stats.TotalFlights,
			v.Stats.TotalDistance),
		Segments: opt.Segments,
		NoLabels: opt.NoLabels,
	}

	// Render fully before writing anything, so a failure can still be a 500
	buf := bytes.Buffer{}
	if err := rm.Write(&buf, v.Processed, ds.Index(), v.Activity); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline; filename=\"flights.pdf\"")
	w.Write(buf.Bytes())
}
