package analysis

// go test -v github.com/netbeen/flight-path-chronicle/analysis

import(
	"bytes"
	"errors"
	"strings"
	"testing"

	fpc "github.com/netbeen/flight-path-chronicle"
	"github.com/netbeen/flight-path-chronicle/report"
)

var testAirports = []fpc.Airport{
	{Code:"PEK", Name:"Beijing Capital", Latitude:40.0799, Longitude:116.6031, City:"Beijing", Country:"China"},
	{Code:"PVG", Name:"Shanghai Pudong", Latitude:31.1443, Longitude:121.8083, City:"Shanghai", Country:"China"},
	{Code:"SIN", Name:"Singapore Changi", Latitude:1.3644, Longitude:103.9915, City:"Singapore", Country:"Singapore"},
	{Code:"SEA", Name:"Seattle-Tacoma", Latitude:47.4502, Longitude:-122.3088, City:"Seattle", Country:"USA"},
}

var testFlights = []fpc.Flight{
	{DepartureAirport:"PEK", ArrivalAirport:"PVG", FlightNumber:"CA1501", DepartureTime:"2023-03-01T08:00:00Z"},
	{DepartureAirport:"PVG", ArrivalAirport:"PEK", FlightNumber:"CA1502", DepartureTime:"2023-03-05T08:00:00Z"},
	{DepartureAirport:"PVG", ArrivalAirport:"SIN", FlightNumber:"MF873", DepartureTime:"2024-05-01T08:00:00Z"},
	{DepartureAirport:"SIN", ArrivalAirport:"PVG", FlightNumber:"MF874", DepartureTime:"2024-05-10T08:00:00Z"},
	{DepartureAirport:"PVG", ArrivalAirport:"SEA", FlightNumber:"MU587", DepartureTime:"2025-07-01T08:00:00Z"},
	{DepartureAirport:"PVG", ArrivalAirport:"XXX", FlightNumber:"MF9999", DepartureTime:"2025-08-01T08:00:00Z"},
}

func run(t *testing.T, name string, fl fpc.Filter, flights []fpc.Flight) report.Report {
	t.Helper()
	rep,err := report.Run(report.Options{Name:name, Filter:fl}, flights, testAirports)
	if err != nil { t.Fatalf("report %s: %v", name, err) }
	return rep
}

func TestRegistry(t *testing.T) {
	known := map[string]bool{}
	for _,entry := range report.ListReports() {
		known[entry.Name] = true
		if entry.Description == "" { t.Errorf("report %s has no description", entry.Name) }
	}
	for _,name := range []string{"summary", "routes", "activity", "years", "airlines"} {
		if !known[name] { t.Errorf("report %s not registered", name) }
	}

	_,err := report.Run(report.Options{Name:"nope"}, testFlights, testAirports)
	if !errors.Is(err, report.ErrUnknownReport) {
		t.Errorf("unknown report: got err %v", err)
	}
}

func TestRoutesReport(t *testing.T) {
	withRepeat := append(append([]fpc.Flight{}, testFlights...),
		fpc.Flight{DepartureAirport:"PEK", ArrivalAirport:"PVG", FlightNumber:"CA1503",
			DepartureTime:"2025-09-01T08:00:00Z"})
	rep := run(t, "routes", fpc.Filter{}, withRepeat)

	if len(rep.RowsText) != 5 {
		t.Fatalf("want 5 routes, got %d: %v", len(rep.RowsText), rep.RowsText)
	}
	first := rep.RowsText[0]
	if first[0] != "PEK-PVG" || first[3] != "2" || first[5] != string(fpc.Returning) || first[7] != "0.30" {
		t.Errorf("first row: %v", first)
	}
	if rep.I["[C] Flights not drawn (unknown airport)"] != 1 {
		t.Errorf("undrawn counter: %v", rep.I)
	}
	// Pacific-centred, so PVG-SEA is a plain eastward arc
	if rep.RowsText[4][0] != "PVG-SEA" || rep.RowsText[4][8] != "" || rep.RowsText[4][5] != string(fpc.Outgoing) {
		t.Errorf("PVG-SEA: %v", rep.RowsText[4])
	}
}

func TestRoutesReportFiltered(t *testing.T) {
	rep := run(t, "routes", fpc.Filter{Airline:"MF"}, testFlights)

	if len(rep.RowsText) != 2 || rep.RowsText[0][0] != "PVG-SIN" || rep.RowsText[1][0] != "SIN-PVG" {
		t.Errorf("MF routes: %v", rep.RowsText)
	}
	if rep.I["[B] Matched filter airline:MF"] != 3 {
		t.Errorf("filter counter: %v", rep.I)
	}
}

func TestActivityReport(t *testing.T) {
	rep := run(t, "activity", fpc.Filter{}, testFlights)

	codes := []string{}
	for _,row := range rep.RowsText { codes = append(codes, row[0]) }
	if strings.Join(codes, ",") != "PVG,PEK,SIN,SEA,XXX" {
		t.Errorf("activity order: %v", codes)
	}
	if pvg := rep.RowsText[0]; pvg[4] != "6" || pvg[5] != "8.5" {
		t.Errorf("PVG row: %v", pvg)
	}
	if xxx := rep.RowsText[4]; xxx[1] != "XXX" {
		t.Errorf("unknown airport row: %v", xxx)
	}
	if rep.I["[C] Unknown airport codes"] != 1 || rep.I["[C] Airports visited"] != 5 {
		t.Errorf("counters: %v", rep.I)
	}
}

func TestYearsReport(t *testing.T) {
	withBad := append(append([]fpc.Flight{}, testFlights...),
		fpc.Flight{DepartureAirport:"PEK", ArrivalAirport:"PVG", FlightNumber:"CA9", DepartureTime:"yesterday"})
	rep := run(t, "years", fpc.Filter{}, withBad)

	years := []string{}
	for _,row := range rep.RowsText { years = append(years, row[0]+":"+row[1]) }
	if strings.Join(years, ",") != "2025:2,2024:2,2023:2" {
		t.Errorf("years: %v", years)
	}
	if rep.I["[C] Flights with bad dates"] != 1 || rep.S["[C] Undated flights"] == "" {
		t.Errorf("bad date not reported: %v %v", rep.I, rep.S)
	}
}

func TestAirlinesReport(t *testing.T) {
	rep := run(t, "airlines", fpc.Filter{}, testFlights)

	if len(rep.RowsText) != 3 {
		t.Fatalf("want 3 airlines, got %v", rep.RowsText)
	}
	if mf := rep.RowsText[0]; mf[0] != "MF" || mf[1] != "Xiamen Airlines" || mf[2] != "3" {
		t.Errorf("top airline row: %v", mf)
	}
	if rep.RowsText[1][0] != "CA" || rep.RowsText[2][0] != "MU" {
		t.Errorf("airline order: %v", rep.RowsText)
	}
}

func TestSummaryReportCSV(t *testing.T) {
	rep := run(t, "summary", fpc.Filter{}, testFlights)

	buf := bytes.Buffer{}
	if err := rep.WriteCSV(&buf); err != nil { t.Fatal(err) }

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "Statistic,Value,Detail" {
		t.Errorf("headers: %q", lines[0])
	}
	if lines[1] != "Total flights,6," {
		t.Errorf("total row: %q", lines[1])
	}
	if !strings.Contains(buf.String(), "Top airline,MF,\"Xiamen Airlines, 3 flights\"") {
		t.Errorf("no top airline in:\n%s", buf.String())
	}

	meta := map[string]string{}
	for _,kv := range rep.MetadataTable() { meta[kv[0]] = kv[1] }
	if meta["[Z] distance stats, N"] != "5" {
		t.Errorf("distance histogram: %v", meta)
	}
	if meta["[C] Flights with unknown airports"] != "1" {
		t.Errorf("unknown airports: %v", meta)
	}
}
