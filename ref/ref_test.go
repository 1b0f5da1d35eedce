package ref

// go test -v github.com/netbeen/flight-path-chronicle/ref

import(
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	fpc "github.com/netbeen/flight-path-chronicle"
)

func TestBuiltinProvider(t *testing.T) {
	ctx := context.Background()
	sp := NewBuiltinProvider()

	airports,err := sp.ListAirports(ctx)
	if err != nil || len(airports) != 11 {
		t.Fatalf("airports: %d %v", len(airports), err)
	}
	flights,err := sp.ListFlights(ctx)
	if err != nil || len(flights) != 44 {
		t.Fatalf("flights: %d %v", len(flights), err)
	}

	// Callers get copies
	airports[0].Latitude = -99
	flights[0].FlightNumber = "XX0000"
	again,_ := sp.ListAirports(ctx)
	againF,_ := sp.ListFlights(ctx)
	if again[0].Latitude == -99 || againF[0].FlightNumber == "XX0000" {
		t.Errorf("provider handed out its own slices")
	}

	// The built-in log is clean
	if problems := Validate(again, againF); len(problems) != 0 {
		t.Errorf("builtin dataset has problems: %v", problems)
	}

	if a,ok,err := ByCode(ctx, sp, "HKT"); err != nil || !ok || a.Name != "Phuket" {
		t.Errorf("ByCode(HKT): %v %v %v", a, ok, err)
	}
	if _,ok,_ := ByCode(ctx, sp, "ZZZ"); ok {
		t.Errorf("ByCode(ZZZ) found something")
	}
}

func TestBuiltinStatistics(t *testing.T) {
	ds,err := Load(context.Background(), NewBuiltinProvider(), NewBuiltinProvider(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	stats := fpc.CalculateFlightStatistics(ds.Flights, ds.Airports)
	if stats.TotalFlights != 44 {
		t.Errorf("TotalFlights %d", stats.TotalFlights)
	}
	if stats.TopAirline == nil || stats.TopAirline.Code != "MF" {
		t.Errorf("TopAirline %+v", stats.TopAirline)
	}
	if stats.TopDestinations[0].Code != "HGH" || stats.TopDestinations[1].Code != "SIN" {
		t.Errorf("TopDestinations %v", stats.TopDestinations)
	}
	if stats.LongestFlight == nil || stats.LongestFlight.From != "PVG" || stats.LongestFlight.To != "SEA" {
		t.Errorf("LongestFlight %v", stats.LongestFlight)
	}

	years,err := fpc.AvailableYears(ds.Flights)
	if err != nil || !reflect.DeepEqual(years, []string{"2026", "2025", "2024", "2023", "2021"}) {
		t.Errorf("years %v %v", years, err)
	}

	// Every flight resolves, so every flight gets drawn
	if n := len(fpc.ProcessFlights(ds.Flights, ds.Airports)); n != 44 {
		t.Errorf("processed %d", n)
	}
}

type failingProvider struct{ StaticProvider }
func (failingProvider)ListFlights(ctx context.Context) ([]fpc.Flight, error) {
	return nil, errors.New("nope")
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	sp := StaticProvider{
		Name: "test",
		Airports: []fpc.Airport{{Code:"SIN"}, {Code:"HGH"}},
		Flights: []fpc.Flight{{FlightNumber:"MF1", DepartureAirport:"HGH", ArrivalAirport:"SIN"}},
	}

	ds,err := Load(ctx, sp, sp, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Airports[0].Code != "HGH" || ds.Source != "test" || ds.Loaded.IsZero() {
		t.Errorf("dataset: %s %v", ds, ds.Airports)
	}

	if _,err := Load(ctx, sp, failingProvider{sp}, nil); err == nil || !strings.Contains(err.Error(), "nope") {
		t.Errorf("expected the flight error, got %v", err)
	}

	cancelled,cancel := context.WithCancel(ctx)
	cancel()
	if _,err := Load(cancelled, sp, sp, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFileProviderFormats(t *testing.T) {
	ctx := context.Background()
	sp := NewBuiltinProvider()
	airports,_ := sp.ListAirports(ctx)
	flights,_ := sp.ListFlights(ctx)

	for _,ext := range []string{".json", ".msgpack", ".msgpack.zst"} {
		fp := NewFileProvider(t.TempDir(), ext)
		if err := fp.WriteLists(airports, flights); err != nil {
			t.Fatalf("%s: write: %v", ext, err)
		}

		gotA,err := fp.ListAirports(ctx)
		if err != nil || !reflect.DeepEqual(gotA, airports) {
			t.Errorf("%s: airports differ (%v)", ext, err)
		}
		gotF,err := fp.ListFlights(ctx)
		if err != nil || !reflect.DeepEqual(gotF, flights) {
			t.Errorf("%s: flights differ (%v)", ext, err)
		}
	}

	if _,err := NewFileProvider(t.TempDir(), ".json").ListAirports(ctx); err == nil {
		t.Errorf("missing file should be an error")
	}
}

func TestSnapshot(t *testing.T) {
	ds,err := Load(context.Background(), NewBuiltinProvider(), NewBuiltinProvider(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	path := filepath.Join(t.TempDir(), "snap", "chronicle.msgpack.zst")
	if err := SaveSnapshot(path, ds); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded,err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(loaded.Airports, ds.Airports) || !reflect.DeepEqual(loaded.Flights, ds.Flights) {
		t.Errorf("snapshot lists differ")
	}
	if loaded.Source != ds.Source || !loaded.Loaded.Equal(ds.Loaded) {
		t.Errorf("snapshot metadata differs: %s vs %s", loaded, ds)
	}

	// And as a provider
	reloaded,err := Load(context.Background(), SnapshotProvider{path}, SnapshotProvider{path}, nil)
	if err != nil || len(reloaded.Flights) != len(ds.Flights) {
		t.Errorf("SnapshotProvider: %v", err)
	}
}

func TestHTTPProvider(t *testing.T) {
	airports := []fpc.Airport{{Code:"SIN", Name:"Singapore Changi", Latitude:1.3644, Longitude:103.9915}}
	flights := []fpc.Flight{{FlightNumber:"TR652", DepartureAirport:"SIN", ArrivalAirport:"HKT",
		DepartureTime:"2025-08-01T18:35:00"}}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/airports", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(airports)
	})
	mux.HandleFunc("/api/flights", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(flights)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	hp := HTTPProvider{BaseURL:srv.URL + "/"}
	ds,err := Load(context.Background(), hp, hp, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(ds.Airports, airports) || !reflect.DeepEqual(ds.Flights, flights) {
		t.Errorf("got %v", ds)
	}

	bad := HTTPProvider{BaseURL:srv.URL + "/nothing-here"}
	if _,err := bad.ListFlights(context.Background()); err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("expected a bad status error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	airports := []fpc.Airport{
		{Code:"HGH", Latitude:30.2, Longitude:120.4},
		{Code:"SIN", Latitude:1.36, Longitude:103.99},
		{Code:"SIN", Latitude:1.36, Longitude:103.99},
		{Code:"BAD", Latitude:95, Longitude:10},
	}
	flights := []fpc.Flight{
		{FlightNumber:"MF1", DepartureAirport:"HGH", ArrivalAirport:"SIN", DepartureTime:"2024-01-01T08:00:00"},
		{FlightNumber:"MF2", DepartureAirport:"HGH", ArrivalAirport:"ZZZ", DepartureTime:"2024-01-01T08:00:00"},
		{FlightNumber:"MF3", DepartureAirport:"SIN", ArrivalAirport:"HGH", DepartureTime:"whenever"},
		{FlightNumber:"MF4", DepartureAirport:"SIN", ArrivalAirport:"HGH",
			DepartureTime:"2024-01-01T08:00:00Z", ArrivalTime:"2024-01-01T07:00:00Z"},
		// Local arrival time earlier than departure is fine without zones
		{FlightNumber:"JL62", DepartureAirport:"SIN", ArrivalAirport:"HGH",
			DepartureTime:"2024-01-01T17:00:00", ArrivalTime:"2024-01-01T11:00:00"},
	}

	counts := map[ProblemKind]int{}
	for _,p := range Validate(airports, flights) { counts[p.Kind]++ }

	expected := map[ProblemKind]int{
		DuplicateAirport: 1,
		BadCoordinates: 1,
		UnresolvedAirport: 1,
		BadTime: 1,
		ArrivesBeforeDeparture: 1,
	}
	if !reflect.DeepEqual(counts, expected) {
		t.Errorf("expected %v, got %v", expected, counts)
	}
}

func TestFormatFromName(t *testing.T) {
	tests := map[string]Format{
		"a.json": JSON,
		"b.msgpack": Msgpack,
		"dir/c.msgpack.zst": MsgpackZstd,
		"noext": JSON,
	}
	for name,expected := range tests {
		if f := FormatFromName(name); f != expected {
			t.Errorf("%s: expected %s, got %s", name, expected, f)
		}
	}

	bq := BigQueryProvider{Project:"p", Dataset:"d"}
	if !strings.Contains(bq.FlightsSQL(), "`p.d.flights`") || !strings.Contains(bq.AirportsSQL(), "`p.d.airports`") {
		t.Errorf("bigquery SQL: %s / %s", bq.AirportsSQL(), bq.FlightsSQL())
	}
	if gp := (GCSProvider{Bucket:"b", Prefix:"x/"}); gp.objectName("flights") != "x/flights.json" {
		t.Errorf("GCS object name %s", gp.objectName("flights"))
	}
}

func TestSource(t *testing.T) {
	tests := []struct{
		args     []string
		expected string // provider String(), or "" when an error is expected
	}{
		{[]string{}, "builtin"},
		{[]string{"-source=dir", "-dir=/tmp/log"}, "file:/tmp/log"},
		{[]string{"-source=snapshot", "-snapshot=a.msgpack.zst"}, "snapshot:a.msgpack.zst"},
		{[]string{"-source=snapshot"}, ""},
		{[]string{"-source=gcs"}, ""},
		{[]string{"-source=bq"}, ""},
		{[]string{"-source=carrier-pigeon"}, ""},
	}

	for i,test := range tests {
		src := Source{}
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		src.AddFlags(fs)
		if err := fs.Parse(test.args); err != nil {
			t.Fatalf("[%d] parse: %v", i, err)
		}

		p,err := src.Provider()
		if test.expected == "" {
			if err == nil { t.Errorf("[%d] %v: expected error, got %s", i, test.args, p) }
			continue
		} else if err != nil {
			t.Errorf("[%d] %v: %v", i, test.args, err)
			continue
		}
		if p.String() != test.expected {
			t.Errorf("[%d] expected %s, got %s", i, test.expected, p.String())
		}
	}
}

func TestBigQueryRows(t *testing.T) {
	ds := Dataset{
		Airports: []fpc.Airport{{Code:"PEK", Name:"Beijing Capital", Latitude:40.08, Longitude:116.58}},
		Flights: []fpc.Flight{
			{FlightNumber:"CA1501", DepartureAirport:"PEK", ArrivalAirport:"PVG", DepartureTime:"2024-01-01T08:00:00+08:00"},
			{FlightNumber:"CA1502", DepartureAirport:"PVG", ArrivalAirport:"PEK", DepartureTime:"2024-01-05T08:00:00+08:00"},
		},
	}

	buf := bytes.Buffer{}
	n,err := writeBigQueryRows(&buf, ds, "flights")
	if err != nil || n != 2 {
		t.Fatalf("flights: n=%d, err=%v", n, err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %s", len(lines), buf.String())
	}
	row := bqFlightRow{}
	if err := json.Unmarshal([]byte(lines[1]), &row); err != nil {
		t.Fatal(err)
	}
	if row.Seq != 1 || row.FlightNumber != "CA1502" || row.ArrivalTime != "" {
		t.Errorf("second row: %+v", row)
	}

	buf.Reset()
	if n,err := writeBigQueryRows(&buf, ds, "airports"); err != nil || n != 1 {
		t.Errorf("airports: n=%d, err=%v", n, err)
	} else if !strings.Contains(buf.String(), `"city":""`) {
		t.Errorf("airport row should carry every column: %s", buf.String())
	}

	if _,err := writeBigQueryRows(&buf, ds, "runways"); err == nil {
		t.Errorf("expected error for unknown table")
	}
}
