package ui

import(
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/skypies/util/widget"

	fpc "github.com/netbeen/flight-path-chronicle"
	"github.com/netbeen/flight-path-chronicle/curve"
	"github.com/netbeen/flight-path-chronicle/report"
)

const MaxSegments = 512

// Common parameters for every API call, as parsed from CGI params
type UIOptions struct {
	Filter   fpc.Filter // &year=2024&airline=MF&until=2024-06-30

	Segments int        // points per arc, for geojson and pdf
	Simplify float64    // Douglas-Peucker threshold in degrees; zero keeps every point
	Limit    int        // zero for no limit
	Recent   bool       // flight lists newest first

	Pretty   bool       // indent JSON
	CSV      bool       // reports only
	NoLabels bool       // pdf only
}

// formValueInt is strict: unlike widget.FormValueIntWithDefault, a present but
// unparseable (or zero) value is not replaced by the default.
func formValueInt(r *http.Request, name string, def int) (int, error) {
	str := strings.TrimSpace(r.FormValue(name))
	if str == "" { return def, nil }
	i,err := strconv.Atoi(str)
	if err != nil { return 0, fmt.Errorf("url arg '%s': want an integer, got %q", name, str) }
	return i, nil
}

func formValueFloat64(r *http.Request, name string) (float64, error) {
	str := strings.TrimSpace(r.FormValue(name))
	if str == "" { return 0, nil }
	f,err := strconv.ParseFloat(str, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("url arg '%s': want a number, got %q", name, str)
	}
	return f, nil
}

func FormValueUIOptions(r *http.Request) (UIOptions, error) {
	fl,err := report.FormValueFilter(r)
	if err != nil { return UIOptions{}, err }

	opt := UIOptions{
		Filter: fl,
		Recent: widget.FormValueCheckbox(r, "recent"),
		Pretty: widget.FormValueCheckbox(r, "pretty"),
		CSV: widget.FormValueCheckbox(r, "csv"),
		NoLabels: widget.FormValueCheckbox(r, "nolabels"),
	}

	if opt.Segments,err = formValueInt(r, "segments", curve.DefaultSegments); err != nil {
		return UIOptions{}, err
	}
	if opt.Simplify,err = formValueFloat64(r, "simplify"); err != nil {
		return UIOptions{}, err
	}
	if opt.Limit,err = formValueInt(r, "limit", 0); err != nil {
		return UIOptions{}, err
	}

	if opt.Segments < 1 || opt.Segments > MaxSegments {
		return UIOptions{}, fmt.Errorf("url arg 'segments': want 1..%d, got %d", MaxSegments, opt.Segments)
	}
	if opt.Simplify < 0 {
		return UIOptions{}, fmt.Errorf("url arg 'simplify': must not be negative")
	}
	if opt.Limit < 0 {
		return UIOptions{}, fmt.Errorf("url arg 'limit': must not be negative")
	}

	return opt, nil
}

// parsePercent reads a timeline position; out-of-range values get clamped later.
func parsePercent(s string) (float64, error) {
	p,err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(p) {
		return 0, fmt.Errorf("url arg 'progress': want a percentage, got %q", s)
	}
	return p, nil
}

func limit[T any](in []T, n int) []T {
	if n > 0 && n < len(in) { return in[:n] }
	return in
}
