package report

// All reports share this same options struct; it is parsed from the http.Request,
// including the report name.

import(
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/skypies/util/widget"

	fpc "github.com/netbeen/flight-path-chronicle"
)

type Options struct {
	Name           string
	Filter         fpc.Filter
	ReportLogLevel ReportLogLevel
}

// FormValueFilter parses &year=2024&airline=MF&until=2024-06-30 (or an RFC3339 time).
// Missing values, and "all", don't constrain anything.
func FormValueFilter(r *http.Request) (fpc.Filter, error) {
	return ParseFilter(r.FormValue("year"), r.FormValue("airline"), r.FormValue("until"))
}

// ParseFilter is FormValueFilter for callers without a request, e.g. command line flags.
func ParseFilter(year, airline, until string) (fpc.Filter, error) {
	fl := fpc.Filter{
		Year: strings.TrimSpace(year),
		Airline: strings.ToUpper(strings.TrimSpace(airline)),
	}

	if fl.Year != "" && !strings.EqualFold(fl.Year, "all") {
		if len(fl.Year) != 4 || strings.Trim(fl.Year, "0123456789") != "" {
			return fpc.Filter{}, fmt.Errorf("'year': want YYYY, got %q", fl.Year)
		}
	}

	if until != "" {
		t,err := fpc.ParseFlightTime(until)
		if err != nil { return fpc.Filter{}, fmt.Errorf("'until': %w", err) }
		// A bare date means the whole of that day
		if len(strings.TrimSpace(until)) == len("2006-01-02") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		fl.Until = &t
	}

	return fl, nil
}

func FormValueReportOptions(r *http.Request) (Options, error) {
	if r.FormValue("rep") == "" {
		return Options{}, fmt.Errorf("url arg 'rep' missing (no report specified)")
	}

	fl,err := FormValueFilter(r)
	if err != nil { return Options{}, err }

	opt := Options{
		Name: r.FormValue("rep"),
		Filter: fl,
		ReportLogLevel: INFO,
	}
	if widget.FormValueCheckbox(r, "debug") { opt.ReportLogLevel = DEBUG }

	return opt, nil
}

// A bare minimum of args, to rebuild the report's URL.
func (o Options)ToCGIArgs() string {
	args := []string{"rep="+o.Name}
	if o.Filter.Year != "" { args = append(args, "year="+o.Filter.Year) }
	if o.Filter.Airline != "" { args = append(args, "airline="+o.Filter.Airline) }
	if o.Filter.Until != nil { args = append(args, "until="+o.Filter.Until.UTC().Format(time.RFC3339)) }
	return strings.Join(args, "&")
}
