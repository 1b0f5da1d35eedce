package chronicle

// go test -v github.com/netbeen/flight-path-chronicle

import(
	"math"
	"testing"
)

func TestDistanceKM(t *testing.T) {
	tests := []struct{
		Name             string
		A, B             Airport
		MinKM, MaxKM     float64
	}{
		{"PEK-PVG", testAirports[0], testAirports[1], 1000, 1300},
		{"NRT-LAX", testAirports[3], testAirports[2], 8500, 9000},
		{"equator, one degree", Airport{}, Airport{Longitude:1}, 111.1, 111.3},
		{"across the date line", testAirports[4], testAirports[5], 2200, 2250},
	}

	for _,test := range tests {
		d := test.A.DistKM(test.B)
		if d < test.MinKM || d > test.MaxKM {
			t.Errorf("%s: distance %.1f not in [%.0f,%.0f]", test.Name, d, test.MinKM, test.MaxKM)
		}

		// Symmetry
		if r := test.B.DistKM(test.A); math.Abs(r-d) > 1e-9 {
			t.Errorf("%s: not symmetric, %f vs %f", test.Name, d, r)
		}
	}
}

func TestDistanceToSelfIsZero(t *testing.T) {
	for _,a := range testAirports {
		if d := DistanceKM(a.Latitude, a.Longitude, a.Latitude, a.Longitude); d != 0 {
			t.Errorf("%s: distance to self = %f", a.Code, d)
		}
	}
}

func TestRouteDistanceKM(t *testing.T) {
	idx := NewAirportIndex(testAirports)
	if _,ok := idx.RouteDistanceKM("PEK", "XXX"); ok {
		t.Errorf("unknown arrival resolved")
	}
	if d,ok := idx.RouteDistanceKM("PEK", "PVG"); !ok || d <= 0 {
		t.Errorf("PEK-PVG: got %f, %v", d, ok)
	}
	if name := idx.NameOrCode("XXX"); name != "XXX" {
		t.Errorf("NameOrCode fallback: %q", name)
	}
}
