package report

// go test -v github.com/netbeen/flight-path-chronicle/report

import(
	"bytes"
	"errors"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	fpc "github.com/netbeen/flight-path-chronicle"
)

var(
	testAirports = []fpc.Airport{
		{Code:"PEK", Name:"Beijing Capital", Latitude:40.0799, Longitude:116.6031},
		{Code:"PVG", Name:"Shanghai Pudong", Latitude:31.1443, Longitude:121.8083},
	}
	testFlights = []fpc.Flight{
		{FlightNumber:"CA1501", DepartureAirport:"PEK", ArrivalAirport:"PVG", DepartureTime:"2023-03-01T08:00:00+08:00"},
		{FlightNumber:"MF8502", DepartureAirport:"PVG", ArrivalAirport:"PEK", DepartureTime:"2024-03-05T18:00:00+08:00"},
		{FlightNumber:"CA1503", DepartureAirport:"PEK", ArrivalAirport:"PVG", DepartureTime:"not a date"},
	}
)

func init() {
	HandleReport("test-count", func(r *Report, flights []fpc.Flight, idx fpc.AirportIndex) error {
		r.SetHeaders("Flight", "Route")
		for _,f := range flights {
			r.AddRow(f.FlightNumber, f.Route())
			if km,ok := idx.RouteDistanceKM(f.DepartureAirport, f.ArrivalAirport); ok {
				r.AddDistance(km)
			}
		}
		return nil
	}, "counts flights, for tests")
	SummarizeReport("test-count", func(r *Report) { r.S["[Y] summarized"] = "yes" })

	HandleReport("test-broken", func(r *Report, flights []fpc.Flight, idx fpc.AirportIndex) error {
		return errors.New("kaboom")
	}, "always fails")
}

func TestParseFilter(t *testing.T) {
	tests := []struct{
		year, airline, until string
		expected             string // Filter.String(), or "" for an error
	}{
		{"", "", "", "all flights"},
		{"all", "ALL", "", "all flights"},
		{"2024", " mf ", "", "year:2024 airline:MF"},
		{"", "", "2024-06-30", "until:2024-06-30"},
		{"24", "", "", ""},
		{"20x4", "", "", ""},
		{"", "", "yesterday", ""},
	}

	for i,test := range tests {
		fl,err := ParseFilter(test.year, test.airline, test.until)
		if test.expected == "" {
			if err == nil { t.Errorf("[%d] expected error, got %s", i, fl) }
			continue
		} else if err != nil {
			t.Errorf("[%d] unexpected error: %v", i, err)
			continue
		}
		if fl.String() != test.expected {
			t.Errorf("[%d] expected %q, got %q", i, test.expected, fl.String())
		}
	}

	// A bare date covers all of that day
	fl,_ := ParseFilter("", "", "2024-06-30")
	if fl.Until.Hour() != 23 || fl.Until.Minute() != 59 {
		t.Errorf("bare date until should be end of day, got %s", fl.Until)
	}
}

func TestFormValueReportOptions(t *testing.T) {
	r := httptest.NewRequest("GET", "/report?rep=test-count&year=2024&airline=mf&debug=1", nil)
	opt,err := FormValueReportOptions(r)
	if err != nil { t.Fatal(err) }
	if opt.Name != "test-count" || opt.Filter.Airline != "MF" || opt.ReportLogLevel != DEBUG {
		t.Errorf("bad options: %#v", opt)
	}
	if args := opt.ToCGIArgs(); args != "rep=test-count&year=2024&airline=MF" {
		t.Errorf("ToCGIArgs: %s", args)
	}

	if _,err := FormValueReportOptions(httptest.NewRequest("GET", "/report", nil)); err == nil {
		t.Errorf("expected error for missing rep")
	}
}

func TestRun(t *testing.T) {
	rep,err := Run(Options{Name:"test-count", ReportLogLevel:INFO}, testFlights, testAirports)
	if err != nil { t.Fatal(err) }

	if len(rep.RowsText) != 3 {
		t.Errorf("expected 3 rows, got %d", len(rep.RowsText))
	}
	if rep.I["[A] Flights in log"] != 3 || rep.I["[B] Matched filter all flights"] != 3 {
		t.Errorf("counters: %v", rep.I)
	}
	if rep.S["[Y] summarized"] != "yes" {
		t.Errorf("summarize func not run")
	}

	meta := map[string]string{}
	for _,row := range rep.MetadataTable() { meta[row[0]] = row[1] }
	if meta["[Z] distance stats, N"] != "3" {
		t.Errorf("distance stats: %v", meta)
	}

	// Bad dates get dropped by a year filter, with a warning
	rep,err = Run(Options{Name:"test-count", Filter:fpc.Filter{Year:"2024"}}, testFlights, testAirports)
	if err != nil { t.Fatal(err) }
	if len(rep.RowsText) != 1 || rep.RowsText[0][0] != "MF8502" {
		t.Errorf("year filter: %v", rep.RowsText)
	}
	if rep.S["[B] Filter warning"] == "" {
		t.Errorf("expected a filter warning")
	}

	if _,err := Run(Options{Name:"nope"}, testFlights, testAirports); !errors.Is(err, ErrUnknownReport) {
		t.Errorf("expected ErrUnknownReport, got %v", err)
	}
	if _,err := Run(Options{Name:"test-broken"}, testFlights, testAirports); err == nil {
		t.Errorf("expected error from broken report")
	}
}

func TestWriteCSV(t *testing.T) {
	until := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	rep,err := Run(Options{Name:"test-count", Filter:fpc.Filter{Until:&until}}, testFlights, testAirports)
	if err != nil { t.Fatal(err) }

	buf := bytes.Buffer{}
	if err := rep.WriteCSV(&buf); err != nil { t.Fatal(err) }
	if expected := "Flight,Route\nCA1501,PEK-PVG\n"; buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}

	rec := httptest.NewRecorder()
	rep.OutputAsCSV(rec)
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content type %s", ct)
	}
}

func TestListReports(t *testing.T) {
	names := []string{}
	for _,e := range ListReports() {
		if e.Name == "test-count" || e.Name == "test-broken" { names = append(names, e.Name) }
	}
	if !reflect.DeepEqual(names, []string{"test-broken", "test-count"}) {
		t.Errorf("expected sorted test reports, got %v", names)
	}
}
