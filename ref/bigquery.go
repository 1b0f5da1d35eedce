package ref

import(
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	fpc "github.com/netbeen/flight-path-chronicle"
)

// BigQueryProvider reads from two tables in a dataset. Read-only; the log is maintained
// elsewhere. Column names match the JSON keys.
type BigQueryProvider struct {
	Project       string
	Dataset       string
	AirportsTable string // defaults to "airports"
	FlightsTable  string // defaults to "flights"
	ClientOpts    []option.ClientOption
}

func (bp BigQueryProvider)String() string { return fmt.Sprintf("bq:%s.%s", bp.Project, bp.Dataset) }

func orDefault(s, def string) string {
	if s == "" { return def }
	return s
}

func (bp BigQueryProvider)AirportsSQL() string {
	return fmt.Sprintf("SELECT code, name, latitude, longitude, "+
		"IFNULL(city, '') AS city, IFNULL(country, '') AS country "+
		"FROM `%s.%s.%s` ORDER BY code", bp.Project, bp.Dataset, orDefault(bp.AirportsTable, "airports"))
}

// Flights keep their logged order; the table carries an explicit sequence column.
func (bp BigQueryProvider)FlightsSQL() string {
	return fmt.Sprintf("SELECT flightNumber, departureAirport, arrivalAirport, departureTime, "+
		"IFNULL(arrivalTime, '') AS arrivalTime "+
		"FROM `%s.%s.%s` ORDER BY seq", bp.Project, bp.Dataset, orDefault(bp.FlightsTable, "flights"))
}

type bqAirport struct {
	Code      string  `bigquery:"code"`
	Name      string  `bigquery:"name"`
	Latitude  float64 `bigquery:"latitude"`
	Longitude float64 `bigquery:"longitude"`
	City      string  `bigquery:"city"`
	Country   string  `bigquery:"country"`
}

type bqFlight struct {
	FlightNumber     string `bigquery:"flightNumber"`
	DepartureAirport string `bigquery:"departureAirport"`
	ArrivalAirport   string `bigquery:"arrivalAirport"`
	DepartureTime    string `bigquery:"departureTime"`
	ArrivalTime      string `bigquery:"arrivalTime"`
}

func (bp BigQueryProvider)query(ctx context.Context, sql string, each func(*bigquery.RowIterator) error) error {
	client,err := bigquery.NewClient(ctx, bp.Project, bp.ClientOpts...)
	if err != nil { return fmt.Errorf("Creating bigquery client: %w", err) }
	defer client.Close()

	it,err := client.Query(sql).Read(ctx)
	if err != nil { return fmt.Errorf("bigquery read: %w", err) }
	return each(it)
}

func (bp BigQueryProvider)ListAirports(ctx context.Context) ([]fpc.Airport, error) {
	airports := []fpc.Airport{}
	err := bp.query(ctx, bp.AirportsSQL(), func(it *bigquery.RowIterator) error {
		for {
			row := bqAirport{}
			err := it.Next(&row)
			if err == iterator.Done { return nil }
			if err != nil { return fmt.Errorf("bigquery airports: %w", err) }
			airports = append(airports, fpc.Airport(row))
		}
	})
	return airports, err
}

func (bp BigQueryProvider)ListFlights(ctx context.Context) ([]fpc.Flight, error) {
	flights := []fpc.Flight{}
	err := bp.query(ctx, bp.FlightsSQL(), func(it *bigquery.RowIterator) error {
		for {
			row := bqFlight{}
			err := it.Next(&row)
			if err == iterator.Done { return nil }
			if err != nil { return fmt.Errorf("bigquery flights: %w", err) }
			flights = append(flights, fpc.Flight(row))
		}
	})
	return flights, err
}
