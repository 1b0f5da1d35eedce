package chronicle

import(
	"fmt"
	"time"
)

// TimeRange spans the earliest to the latest departure; the timeline slider scrubs over it.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (tr TimeRange)String() string {
	return fmt.Sprintf("[%s - %s]", tr.Start.Format("2006-01-02"), tr.End.Format("2006-01-02"))
}

func (tr TimeRange)IsNil() bool { return tr.Start.IsZero() && tr.End.IsZero() }

// Timeline skips flights it can't date, and reports the first one via the error.
func Timeline(flights []Flight) (TimeRange, error) {
	tr := TimeRange{}
	var firstErr error
	for _,f := range flights {
		t,err := f.DepartureTimeUTC()
		if err != nil {
			if firstErr == nil { firstErr = err }
			continue
		}
		if tr.Start.IsZero() || t.Before(tr.Start) { tr.Start = t }
		if tr.End.IsZero() || t.After(tr.End) { tr.End = t }
	}
	return tr, firstErr
}

func clampPercent(p float64) float64 {
	if p < 0 { return 0 }
	if p > 100 { return 100 }
	return p
}

// At maps a slider position (percent, clamped to [0,100]) to a time.
func (tr TimeRange)At(percent float64) time.Time {
	d := tr.End.Sub(tr.Start)
	return tr.Start.Add(time.Duration(float64(d) * clampPercent(percent) / 100.0))
}

// Progress is the inverse of At; a zero-length range is always at 100%.
func (tr TimeRange)Progress(t time.Time) float64 {
	d := tr.End.Sub(tr.Start)
	if d <= 0 { return 100 }
	return clampPercent(100.0 * float64(t.Sub(tr.Start)) / float64(d))
}
