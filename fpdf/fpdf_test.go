package fpdf

// go test -v github.com/netbeen/flight-path-chronicle/fpdf

import(
	"bytes"
	"math"
	"testing"

	pgeo "github.com/paulmach/go.geo"

	fpc "github.com/netbeen/flight-path-chronicle"
)

var testAirports = []fpc.Airport{
	{Code:"PEK", Name:"Beijing Capital", Latitude:40.0799, Longitude:116.6031},
	{Code:"PVG", Name:"Shanghai Pudong", Latitude:31.1443, Longitude:121.8083},
	{Code:"SIN", Name:"Singapore Changi", Latitude:1.3644, Longitude:103.9915},
	{Code:"SEA", Name:"Seattle-Tacoma", Latitude:47.4502, Longitude:-122.3088},
}

var testFlights = []fpc.Flight{
	{DepartureAirport:"PEK", ArrivalAirport:"PVG", FlightNumber:"CA1501", DepartureTime:"2023-03-01T08:00:00Z"},
	{DepartureAirport:"PVG", ArrivalAirport:"PEK", FlightNumber:"CA1502", DepartureTime:"2023-03-05T08:00:00Z"},
	{DepartureAirport:"PVG", ArrivalAirport:"SIN", FlightNumber:"MF873", DepartureTime:"2024-05-01T08:00:00Z"},
	{DepartureAirport:"PVG", ArrivalAirport:"SEA", FlightNumber:"MU587", DepartureTime:"2025-07-01T08:00:00Z"},
	{DepartureAirport:"PVG", ArrivalAirport:"XXX", FlightNumber:"MF9999", DepartureTime:"2025-08-01T08:00:00Z"},
}

func TestWriteRouteMap(t *testing.T) {
	pfs := fpc.ProcessFlights(testFlights, testAirports)
	idx := fpc.NewAirportIndex(testAirports)
	activity := fpc.AirportActivity(testFlights)

	tests := []struct{
		name string
		rm   RouteMap
		pfs  []fpc.ProcessedFlight
	}{
		{"fitted", RouteMap{Title:"All flights"}, pfs},
		{"world", RouteMap{Area:WorldArea, NoLabels:true}, pfs},
		{"empty", RouteMap{}, []fpc.ProcessedFlight{}},
	}

	for _,test := range tests {
		buf := bytes.Buffer{}
		if err := test.rm.Write(&buf, test.pfs, idx, activity); err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
			t.Errorf("%s: output isn't a PDF: %q", test.name, buf.Bytes()[:16])
		}
	}
}

func TestDrawCounts(t *testing.T) {
	pfs := fpc.ProcessFlights(testFlights, testAirports)
	idx := fpc.NewAirportIndex(testAirports)
	activity := fpc.AirportActivity(testFlights)

	pdf := NewRouteMapPdf()
	bg := NewMapGrid(pdf, WorldArea)

	if n := DrawRoutes(bg, pfs, idx, 8); n != 4 {
		t.Errorf("routes drawn: %d, want 4", n)
	}
	// XXX has activity but no airport record
	if n := DrawAirports(bg, idx, activity, true); n != 4 {
		t.Errorf("airports drawn: %d, want 4", n)
	}

	// A box around China leaves SIN and SEA off the map
	china := FitArea(pgeo.NewBound(110, 125, 28, 42))
	bg = NewMapGrid(pdf, china)
	if n := DrawAirports(bg, idx, activity, false); n != 2 {
		t.Errorf("airports drawn in %v: %d, want 2", china, n)
	}
	if pdf.Err() {
		t.Errorf("pdf error: %v", pdf.Error())
	}
}

func TestFitArea(t *testing.T) {
	aspect := MapWidth / MapHeight

	def := FitArea(pgeo.NewBound(0, 0, 0, 0))
	if def.SW.Lat != 5 || def.NE.Lat != 65 {
		t.Errorf("default view: %v", def)
	}
	if mid := (def.SW.Long + def.NE.Long) / 2; math.Abs(mid - 105) > 1e-9 {
		t.Errorf("default view not centred on 105: %v", def)
	}

	tests := []struct{
		name       string
		b          *pgeo.Bound
		wantN      float64 // NaN to skip
		wantSpanLat float64
	}{
		{"tall", pgeo.NewBound(100, 130, 20, 40), 45, 30},
		{"wide", pgeo.NewBound(100, 250, 20, 40), math.NaN(), (160/aspect)},
		{"polar", pgeo.NewBound(100, 110, 80, 88), 90, 18},
	}

	for _,test := range tests {
		area := FitArea(test.b)
		spanLat := area.NE.Lat - area.SW.Lat
		spanLong := area.NE.Long - area.SW.Long
		if math.Abs(spanLat - test.wantSpanLat) > 1e-6 {
			t.Errorf("%s: lat span %.3f, want %.3f (%v)", test.name, spanLat, test.wantSpanLat, area)
		}
		if math.Abs(spanLong/spanLat - aspect) > 1e-6 {
			t.Errorf("%s: aspect %.3f, want %.3f (%v)", test.name, spanLong/spanLat, aspect, area)
		}
		if !math.IsNaN(test.wantN) && math.Abs(area.NE.Lat - test.wantN) > 1e-6 {
			t.Errorf("%s: north edge %.3f, want %.3f", test.name, area.NE.Lat, test.wantN)
		}
	}
}

func TestTicks(t *testing.T) {
	tests := []struct{
		f    func(float64) string
		in   float64
		want string
	}{
		{LongitudeTick, 120, "120E"},
		{LongitudeTick, 240, "120W"},
		{LongitudeTick, 360, "0"},
		{LongitudeTick, -20, "20W"},
		{LongitudeTick, 380, "20E"},
		{LatitudeTick, 30, "30N"},
		{LatitudeTick, -15, "15S"},
		{LatitudeTick, 0, "0"},
	}
	for i,test := range tests {
		if got := test.f(test.in); got != test.want {
			t.Errorf("[%d] %v: got %q, want %q", i, test.in, got, test.want)
		}
	}
}

func TestMarkerShading(t *testing.T) {
	r1,g1,b1 := markerRGB(1, 10)
	r2,g2,b2 := markerRGB(10, 10)
	if r1+g1+b1 <= r2+g2+b2 {
		t.Errorf("busy marker (%d,%d,%d) should be darker than quiet (%d,%d,%d)", r2, g2, b2, r1, g1, b1)
	}

	if r,g,b := hexToRGB("#f87171"); r != 0xf8 || g != 0x71 || b != 0x71 {
		t.Errorf("hex: got %d,%d,%d", r, g, b)
	}
	if r,g,b := hexToRGB("nonsense"); r != 0x9c || g != 0xa3 || b != 0xaf {
		t.Errorf("fallback: got %d,%d,%d", r, g, b)
	}
}
