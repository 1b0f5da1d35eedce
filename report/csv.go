package report

import(
	"fmt"
	"encoding/csv"
	"io"
	"net/http"
)

func (r *Report)WriteCSV(w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Write(r.HeadersText)
	for _,row := range r.RowsText {
		csvWriter.Write(row)
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

func (r *Report)OutputAsCSV(w http.ResponseWriter) {
	filename := fmt.Sprintf("report-%s.csv", r.Name)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))

	if err := r.WriteCSV(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
