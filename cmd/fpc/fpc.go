package main

// fpc is a command line view of the flight log.
//
//  fpc -source=dir -dir=./data stats
//  fpc -year=2024 -airline=MF routes
//  fpc -rep=airlines report > airlines.csv
//  fpc -o=map.pdf pdf
//  fpc -o=routes.geojson -segments=64 geojson
//  fpc -o=log.msgpack.zst snapshot
//  fpc -bucket=my-bucket -project=my-proj publish

import(
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/goforj/godump"

	fpc "github.com/netbeen/flight-path-chronicle"
	_ "github.com/netbeen/flight-path-chronicle/analysis" // populate the reports registry
	"github.com/netbeen/flight-path-chronicle/curve"
	"github.com/netbeen/flight-path-chronicle/fpdf"
	flog "github.com/netbeen/flight-path-chronicle/log"
	"github.com/netbeen/flight-path-chronicle/ref"
	"github.com/netbeen/flight-path-chronicle/report"
)

var(
	ctx = context.Background()
	fSource ref.Source
	fVerbosity int
	fYear string
	fAirline string
	fUntil string
	fReport string
	fOutput string
	fSegments int
	fSimplify float64
	fLimit int
)

func init() {
	fSource.AddFlags(flag.CommandLine)
	flag.IntVar(&fVerbosity, "v", 0, "verbosity level")
	flag.StringVar(&fYear, "year", "", "only flights departing in this year (YYYY)")
	flag.StringVar(&fAirline, "airline", "", "only flights on this airline (two letter code)")
	flag.StringVar(&fUntil, "until", "", "only flights departing up to this date")
	flag.StringVar(&fReport, "rep", "summary", "which report to run")
	flag.StringVar(&fOutput, "o", "", "output file (default stdout)")
	flag.IntVar(&fSegments, "segments", curve.DefaultSegments, "segments per arc")
	flag.Float64Var(&fSimplify, "simplify", 0, "simplify arcs to this tolerance, in degrees")
	flag.IntVar(&fLimit, "limit", 0, "show at most this many rows (0 for all)")
	flag.Parse()
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: fpc [flags] stats|routes|activity|reports|report|pdf|geojson|snapshot|validate|publish\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	if flag.NArg() != 1 { usage() }

	lvl := "warn"
	if fVerbosity > 0 { lvl = "debug" }
	lg := flog.NewForWriter(os.Stderr, lvl, false)

	p,err := fSource.Provider()
	if err != nil { log.Fatal(err) }

	tStart := time.Now()
	ds,err := ref.Load(ctx, p, p, lg)
	if err != nil { log.Fatal(err) }
	lg.Debug("loaded", "dataset", ds.String(), "elapsed", time.Since(tStart))

	fl,err := report.ParseFilter(fYear, fAirline, fUntil)
	if err != nil { log.Fatal(err) }

	switch flag.Arg(0) {
	case "stats":    showStats(ds, fl)
	case "routes":   showRoutes(ds, fl)
	case "activity": showActivity(ds, fl)
	case "reports":  showReports()
	case "report":   runReport(ds, fl)
	case "pdf":      writePDF(ds, fl)
	case "geojson":  writeGeoJSON(ds, fl)
	case "snapshot": writeSnapshot(ds)
	case "validate": validate(ds)
	case "publish":  publish(ds)
	default:         usage()
	}
}

// {{{ helpers

func filtered(ds ref.Dataset, fl fpc.Filter) []fpc.Flight {
	flights,err := fl.Apply(ds.Flights)
	if err != nil { fmt.Fprintf(os.Stderr, "warning: %v\n", err) }
	return flights
}

func withOutput(f func(w io.Writer) error) {
	var w io.Writer = os.Stdout
	if fOutput != "" {
		fh,err := os.Create(fOutput)
		if err != nil { log.Fatal(err) }
		defer fh.Close()
		w = fh
	}
	if err := f(w); err != nil { log.Fatal(err) }
}

func limited(n int) int {
	if fLimit > 0 && fLimit < n { return fLimit }
	return n
}

// }}}
// {{{ showStats, showRoutes, showActivity

func showStats(ds ref.Dataset, fl fpc.Filter) {
	flights := filtered(ds, fl)
	stats := fpc.CalculateFlightStatistics(flights, ds.Airports)

	fmt.Printf("%s: %d flights, %dkm\n", fl, stats.TotalFlights, stats.TotalDistance)
	for i,d := range stats.TopDestinations {
		fmt.Printf("  dest #%d: %s (%s), %d\n", i+1, d.Code, d.Name, d.Count)
	}
	if stats.TopAirline != nil {
		fmt.Printf("  airline : %s (%s), %d\n", stats.TopAirline.Code, stats.TopAirline.Name,
			stats.TopAirline.Count)
	}
	if stats.LongestFlight != nil { fmt.Printf("  longest : %s\n", stats.LongestFlight) }
	if stats.ShortestFlight != nil { fmt.Printf("  shortest: %s\n", stats.ShortestFlight) }

	if fVerbosity >= 2 {
		godump.Fdump(os.Stdout, stats)
	}
}

func showRoutes(ds ref.Dataset, fl fpc.Filter) {
	idx := ds.Index()
	pfs := fpc.ProcessFlights(filtered(ds, fl), ds.Airports)

	for i,pf := range pfs[:limited(len(pfs))] {
		fmt.Printf("[%3d] %-8s %s %-9s curve=%.2f %6.0fkm\n", i, pf.FlightNumber, pf.Route(),
			pf.Direction, pf.Curvature, pf.Distance)
		if fVerbosity > 0 {
			if path,ok := curve.Arc(pf, idx, fSegments); ok {
				fmt.Printf("      %d points, %.1f deg of arc\n", path.Length(), curve.ArcLengthDegrees(path))
			}
		}
	}
	fmt.Printf("%d of %d flights drawable\n", len(pfs), len(ds.Flights))
}

func showActivity(ds ref.Dataset, fl fpc.Filter) {
	rep,err := report.Run(report.Options{Name:"activity", Filter:fl, ReportLogLevel:report.INFO},
		ds.Flights, ds.Airports)
	if err != nil { log.Fatal(err) }
	for _,row := range rep.RowsText[:limited(len(rep.RowsText))] {
		fmt.Printf("%-4s %5s  r=%-4s %s\n", row[0], row[4], row[5], row[1])
	}
}

// }}}
// {{{ showReports, runReport

func showReports() {
	for _,e := range report.ListReports() {
		fmt.Printf("%-10s %s\n", e.Name, e.Description)
	}
}

func runReport(ds ref.Dataset, fl fpc.Filter) {
	opt := report.Options{Name:fReport, Filter:fl, ReportLogLevel:report.INFO}
	if fVerbosity > 0 { opt.ReportLogLevel = report.DEBUG }

	rep,err := report.Run(opt, ds.Flights, ds.Airports)
	if err != nil { log.Fatal(err) }

	withOutput(rep.WriteCSV)

	if fVerbosity > 0 {
		for _,row := range rep.MetadataTable() {
			fmt.Fprintf(os.Stderr, "%-50s %s\n", row[0], row[1])
		}
		fmt.Fprintf(os.Stderr, "%s", rep.Log)
	}
}

// }}}
// {{{ writePDF, writeGeoJSON

func writePDF(ds ref.Dataset, fl fpc.Filter) {
	flights := filtered(ds, fl)
	idx := ds.Index()
	pfs := fpc.ProcessFlights(flights, ds.Airports)
	stats := fpc.CalculateFlightStatistics(flights, ds.Airports)

	rm := fpdf.RouteMap{
		Title: fmt.Sprintf("Flights (%s): %d flights, %dkm", fl, stats.TotalFlights, stats.TotalDistance),
		Segments: fSegments,
	}
	withOutput(func(w io.Writer) error {
		return rm.Write(w, pfs, idx, fpc.AirportActivity(flights))
	})
}

func writeGeoJSON(ds ref.Dataset, fl fpc.Filter) {
	flights := filtered(ds, fl)
	idx := ds.Index()
	pfs := fpc.ProcessFlights(flights, ds.Airports)

	fc := curve.FeatureCollection(pfs, idx, fpc.AirportActivity(flights), fSegments, fSimplify)
	withOutput(func(w io.Writer) error {
		b,err := fc.MarshalJSON()
		if err != nil { return err }
		_,err = w.Write(b)
		return err
	})
}

// }}}
// {{{ writeSnapshot, validate, publish

func writeSnapshot(ds ref.Dataset) {
	if fOutput == "" { log.Fatal("snapshot needs -o") }
	if err := ref.SaveSnapshot(fOutput, ds); err != nil { log.Fatal(err) }
	fmt.Printf("%s written to %s\n", ds, fOutput)
}

func validate(ds ref.Dataset) {
	probs := ref.Validate(ds.Airports, ds.Flights)
	for _,p := range probs {
		fmt.Printf("%s\n", p)
	}
	fmt.Printf("%s: %d problems\n", ds, len(probs))
	if len(probs) > 0 { os.Exit(1) }
}

// publish copies the loaded lists into the bucket, and (with -project) into BigQuery.
func publish(ds ref.Dataset) {
	if fSource.Bucket == "" { log.Fatal("publish needs -bucket") }
	gp := ref.GCSProvider{Bucket:fSource.Bucket, Prefix:fSource.Prefix, Ext:fSource.Ext}

	if err := gp.WriteLists(ctx, ds); err != nil { log.Fatal(err) }
	fmt.Printf("%s written to %s\n", ds, gp)

	if fSource.Project != "" {
		bp := ref.BigQueryProvider{Project:fSource.Project, Dataset:fSource.Dataset}
		if err := ref.PublishBigQuery(ctx, gp, bp, ds); err != nil { log.Fatal(err) }
		fmt.Printf("%s loaded into %s\n", ds, bp)
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
