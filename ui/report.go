package ui

import(
	"errors"
	"net/http"

	"github.com/netbeen/flight-path-chronicle/ref"
	"github.com/netbeen/flight-path-chronicle/report"
)

type ReportResponse struct {
	Name     string     `json:"name"`
	Args     string     `json:"args"`
	Headers  []string   `json:"headers"`
	Rows     [][]string `json:"rows"`
	Metadata [][]string `json:"metadata"`
	Log      string     `json:"log,omitempty"`
}

// ReportHandler runs a registered report: &rep=NAME plus the usual filter args. &csv=1
// downloads the rows instead.
func (s *Server)ReportHandler(ds ref.Dataset, opt UIOptions, w http.ResponseWriter, r *http.Request) {
	rep,err := report.SetupReport(r)
	if errors.Is(err, report.ErrUnknownReport) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := rep.Process(ds.Flights, ds.Airports); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if opt.CSV {
		rep.OutputAsCSV(w)
		return
	}

	writeJSON(w, ReportResponse{
		Name: rep.Name,
		Args: rep.Options.ToCGIArgs(),
		Headers: rep.HeadersText,
		Rows: rep.RowsText,
		Metadata: rep.MetadataTable(),
		Log: rep.Log,
	}, opt.Pretty)
}

func (s *Server)ReportsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, report.ListReports(), false)
}
