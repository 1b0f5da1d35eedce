package report

import(
	"fmt"
	"net/http"
	"sort"

	fpc "github.com/netbeen/flight-path-chronicle"
)

// A simple registry of all known reports.
type ReportEntry struct {
	ReportFunc        `json:"-"`
	SummarizeFunc     `json:"-"`
	Name, Description string
}

var reportRegistry = map[string]ReportEntry{}

func HandleReport(name string, f ReportFunc, description string) {
	reportRegistry[name] = ReportEntry{
		ReportFunc: f,
		Name: name,
		Description: description,
	}
}
func SummarizeReport(name string, sf SummarizeFunc) {
	entry := reportRegistry[name]
	entry.SummarizeFunc = sf
	reportRegistry[name] = entry
}

func ListReports() []ReportEntry {
	out := []ReportEntry{}

	keys := []string{}
	for k,_ := range reportRegistry { keys = append(keys, k) }
	sort.Strings(keys)

	for _,k := range keys {
		out = append(out, reportRegistry[k])
	}
	return out
}

// ErrUnknownReport is wrapped when a name isn't in the registry.
var ErrUnknownReport = fmt.Errorf("report not known")

func SetupReport(r *http.Request) (Report, error) {
	opt,err := FormValueReportOptions(r)
	if err != nil { return Report{}, err }

	rep,err := InstantiateReport(opt.Name)
	if err != nil { return Report{}, err }

	rep.Options = opt
	return rep, nil
}

func InstantiateReport(name string) (Report,error) {
	// Lookup in registry
	r := BlankReport()

	r.Name = name
	r.Options.Name = name

	if entry,exists := reportRegistry[name]; !exists {
		return r, fmt.Errorf("'%s': %w", name, ErrUnknownReport)
	} else {
		r.Func = entry.ReportFunc
		r.SummarizeFunc = entry.SummarizeFunc
	}
	return r, nil
}

// Run is the whole thing in one go: look up, filter, report.
func Run(opt Options, flights []fpc.Flight, airports []fpc.Airport) (Report, error) {
	rep,err := InstantiateReport(opt.Name)
	if err != nil { return rep, err }
	rep.Options = opt

	err = rep.Process(flights, airports)
	return rep, err
}
