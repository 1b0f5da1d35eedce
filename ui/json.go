package ui

import(
	"encoding/json"
	"net/http"

	"github.com/netbeen/flight-path-chronicle/ref"
)

func writeJSON(w http.ResponseWriter, v interface{}, pretty bool) {
	var jsonBytes []byte
	var err error
	if pretty {
		jsonBytes,err = json.MarshalIndent(v, "", "  ")
	} else {
		jsonBytes,err = json.Marshal(v)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonBytes)
}

// The filter's warning rides along in a header, so the bodies stay plain lists.
func (s *Server)view(ds ref.Dataset, opt UIOptions, w http.ResponseWriter) *View {
	v := s.View(ds, opt.Filter)
	if v.Warning != "" { w.Header().Set("X-Filter-Warning", v.Warning) }
	return v
}
