package report

import(
	"fmt"
	"sort"
	"time"

	"github.com/skypies/util/histogram"

	fpc "github.com/netbeen/flight-path-chronicle"
)

// A ReportFunc sees the already-filtered flights, and fills in headers, rows and counters.
type ReportFunc func(*Report, []fpc.Flight, fpc.AirportIndex) error
type SummarizeFunc func(*Report)

type ReportLogLevel int
const(
	DEBUG = iota
	INFO
)

type Report struct {
	Name              string
	Options           // embedded
	Func              ReportFunc
	SummarizeFunc     // embedded, but just to avoid a more confusing name

	// Output state
	RowsText  [][]string
	HeadersText []string

	I         map[string]int
	F         map[string]float64
	S         map[string]string
	H         histogram.Histogram // distances, km

	Stats histogram.Set // internal performance counters
	Log string
}

func BlankReport() Report {
	return Report{
		I: map[string]int{},
		F: map[string]float64{},
		S: map[string]string{},
		RowsText: [][]string{},
		HeadersText: []string{},
		H: histogram.Histogram{ValMin:0, ValMax:15000, NumBuckets:30},
		Stats: histogram.NewSet(40000),  // maxval, in micros; 40ms == 40000us
	}
}

func (r *Report)Logger(level ReportLogLevel, s string) {
	if level < r.Options.ReportLogLevel { return }
	r.Log += s
}
func (r *Report)Infof(s string,args ...interface{}) { r.Logger(INFO, fmt.Sprintf(s,args...)) }
func (r *Report)Debugf(s string,args ...interface{}) { r.Logger(DEBUG, fmt.Sprintf(s,args...)) }
func (r *Report)Info(s string) { r.Infof("%s", s) }
func (r *Report)Debug(s string) { r.Debugf("%s", s) }

func (r *Report)SetHeaders(headers ...string) {
	if len(r.HeadersText) == 0 { r.HeadersText = headers }
}
func (r *Report)AddRow(text ...string) {
	r.RowsText = append(r.RowsText, text)
}

// AddDistance records one flight's distance into the histogram.
func (r *Report)AddDistance(km float64) {
	r.H.Add(histogram.ScalarVal(km))
}

// {{{ r.Process

// Process applies the filter, then hands the survivors to the report's func.
func (r *Report)Process(flights []fpc.Flight, airports []fpc.Airport) error {
	tStart := time.Now()
	r.I["[A] Flights in log"] = len(flights)

	filtered,err := r.Options.Filter.Apply(flights)
	if err != nil {
		// Bad dates only ever drop flights; say so, but carry on
		r.S["[B] Filter warning"] = err.Error()
		r.Infof("filter: %v\n", err)
	}
	r.I["[B] Matched filter "+r.Options.Filter.String()] = len(filtered)
	r.Stats.RecordValue("filter", time.Since(tStart).Nanoseconds()/1000)

	idx := fpc.NewAirportIndex(airports)
	tStart = time.Now()
	if err := r.Func(r, filtered, idx); err != nil {
		return fmt.Errorf("report %s: %w", r.Name, err)
	}
	r.Stats.RecordValue("report", time.Since(tStart).Nanoseconds()/1000)

	r.FinishSummary()
	return nil
}

// }}}

func (r *Report)FinishSummary() {
	r.Info("**** Stage: all done\n")
	if r.SummarizeFunc != nil { r.SummarizeFunc(r) }
	r.Debugf("Stats (in micros):-\n%s", r.Stats)
}

// MetadataTable is every counter, as sorted (key, value) rows.
func (r *Report)MetadataTable() [][]string {
	all := map[string]string{}

	for k,v := range r.I { all[k] = fmt.Sprintf("%d", v) }
	for k,v := range r.F { all[k] = fmt.Sprintf("%.1f", v) }
	for k,v := range r.S { all[k] = v }

	if stats,valid := r.H.Stats(); valid {
		all["[Z] distance stats, N"] = fmt.Sprintf("%d", stats.N)
		all["[Z] distance stats, Mean"] = fmt.Sprintf("%.0f", stats.Mean)
		all["[Z] distance stats, Stddev"] = fmt.Sprintf("%.0f", stats.Stddev)
		all["[Z] distance stats, 50%ile"] = fmt.Sprintf("%v", stats.Percentile50)
		all["[Z] distance stats, 90%ile"] = fmt.Sprintf("%v", stats.Percentile90)
	}

	keys := []string{}
	for k,_ := range all { keys = append(keys, k) }
	sort.Strings(keys)

	out := [][]string{}
	for _,k := range keys {
		out = append(out, []string{k, all[k]})
	}

	return out
}
