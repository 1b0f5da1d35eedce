package ref

import(
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/storage"
)

// {{{ GCSProvider.WriteLists

// WriteLists replaces both objects, so that a GCSProvider with the same settings will
// read back the dataset.
func (gp GCSProvider)WriteLists(ctx context.Context, ds Dataset) error {
	client,err := storage.NewClient(ctx, gp.ClientOpts...)
	if err != nil { return fmt.Errorf("GCS client: %w", err) }
	defer client.Close()

	write := func(base string, v interface{}) error {
		name := gp.objectName(base)
		return gcsWrite(ctx, client, gp.Bucket, name, func(w io.Writer) error {
			return encode(w, FormatFromName(name), v)
		})
	}

	if err := write("airports", ds.Airports); err != nil { return err }
	return write("flights", ds.Flights)
}

func gcsWrite(ctx context.Context, client *storage.Client, bucket, name string, f func(io.Writer) error) error {
	wc := client.Bucket(bucket).Object(name).NewWriter(ctx)
	if path.Ext(name) == ".json" || path.Ext(name) == ".ndjson" {
		wc.ContentType = "application/json"
	}
	if err := f(wc); err != nil {
		wc.Close()
		return fmt.Errorf("GCS-Write %s|%s: %w", bucket, name, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("GCS-Close %s|%s: %w", bucket, name, err)
	}
	return nil
}

// }}}
// {{{ BigQuery rows

// The flights table needs a seq column to keep logged order; see FlightsSQL.
type bqFlightRow struct {
	Seq              int    `json:"seq" bigquery:"seq"`
	FlightNumber     string `json:"flightNumber" bigquery:"flightNumber"`
	DepartureAirport string `json:"departureAirport" bigquery:"departureAirport"`
	ArrivalAirport   string `json:"arrivalAirport" bigquery:"arrivalAirport"`
	DepartureTime    string `json:"departureTime" bigquery:"departureTime"`
	ArrivalTime      string `json:"arrivalTime" bigquery:"arrivalTime"`
}

type bqAirportRow struct {
	Code      string  `json:"code" bigquery:"code"`
	Name      string  `json:"name" bigquery:"name"`
	Latitude  float64 `json:"latitude" bigquery:"latitude"`
	Longitude float64 `json:"longitude" bigquery:"longitude"`
	City      string  `json:"city" bigquery:"city"`
	Country   string  `json:"country" bigquery:"country"`
}

// writeBigQueryRows emits newline-delimited JSON, the format load jobs want.
func writeBigQueryRows(w io.Writer, ds Dataset, table string) (int, error) {
	enc := json.NewEncoder(w)
	switch table {
	case "airports":
		for _,a := range ds.Airports {
			if err := enc.Encode(bqAirportRow(a)); err != nil { return 0, err }
		}
		return len(ds.Airports), nil
	case "flights":
		for i,f := range ds.Flights {
			row := bqFlightRow{
				Seq: i,
				FlightNumber: f.FlightNumber,
				DepartureAirport: f.DepartureAirport,
				ArrivalAirport: f.ArrivalAirport,
				DepartureTime: f.DepartureTime,
				ArrivalTime: f.ArrivalTime,
			}
			if err := enc.Encode(row); err != nil { return 0, err }
		}
		return len(ds.Flights), nil
	}
	return 0, fmt.Errorf("no table '%s'", table)
}

// }}}
// {{{ PublishBigQuery

// PublishBigQuery stages both lists as NDJSON files in the bucket, then loads them into
// the BigQuery tables, replacing what was there. Blocks until both load jobs finish.
func PublishBigQuery(ctx context.Context, gp GCSProvider, bp BigQueryProvider, ds Dataset) error {
	sc,err := storage.NewClient(ctx, gp.ClientOpts...)
	if err != nil { return fmt.Errorf("GCS client: %w", err) }
	defer sc.Close()

	bc,err := bigquery.NewClient(ctx, bp.Project, bp.ClientOpts...)
	if err != nil { return fmt.Errorf("Creating bigquery client: %w", err) }
	defer bc.Close()

	tables := []struct{
		name   string
		table  string
		schema interface{}
	}{
		{"airports", orDefault(bp.AirportsTable, "airports"), bqAirportRow{}},
		{"flights", orDefault(bp.FlightsTable, "flights"), bqFlightRow{}},
	}

	for _,t := range tables {
		obj := path.Join(gp.Prefix, "bigquery-"+t.name+".ndjson")
		err := gcsWrite(ctx, sc, gp.Bucket, obj, func(w io.Writer) error {
			_,err := writeBigQueryRows(w, ds, t.name)
			return err
		})
		if err != nil { return err }

		schema,err := bigquery.InferSchema(t.schema)
		if err != nil { return fmt.Errorf("schema %s: %w", t.name, err) }

		gcsSrc := bigquery.NewGCSReference(fmt.Sprintf("gs://%s/%s", gp.Bucket, obj))
		gcsSrc.SourceFormat = bigquery.JSON
		gcsSrc.Schema = schema

		loader := bc.Dataset(bp.Dataset).Table(t.table).LoaderFrom(gcsSrc)
		loader.CreateDisposition = bigquery.CreateIfNeeded
		loader.WriteDisposition = bigquery.WriteTruncate

		job,err := loader.Run(ctx)
		if err != nil { return fmt.Errorf("Submission of load job: %w", err) }

		status,err := job.Wait(ctx)
		if err != nil {
			return fmt.Errorf("Failure determining status: %w", err)
		} else if err := status.Err(); err != nil {
			detailedErrStr := ""
			for i,innerErr := range status.Errors {
				detailedErrStr += fmt.Sprintf(" [%2d] %v\n", i, innerErr)
			}
			return fmt.Errorf("Job error (%s): %v\n--\n%s", t.table, err, detailedErrStr)
		}
	}

	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
