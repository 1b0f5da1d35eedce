package ref

import(
	"context"

	"github.com/brunoga/deep"

	fpc "github.com/netbeen/flight-path-chronicle"
)

// StaticProvider serves fixed lists from memory. Callers get copies, so nothing they
// do can change what the next caller sees.
type StaticProvider struct {
	Name     string
	Airports []fpc.Airport
	Flights  []fpc.Flight
}

// NewBuiltinProvider serves the compiled-in log.
func NewBuiltinProvider() StaticProvider {
	return StaticProvider{Name:"builtin", Airports:builtinAirports, Flights:builtinFlights}
}

func (sp StaticProvider)String() string {
	if sp.Name == "" { return "static" }
	return sp.Name
}

func (sp StaticProvider)ListAirports(ctx context.Context) ([]fpc.Airport, error) {
	if err := ctx.Err(); err != nil { return nil, err }
	if sp.Airports == nil { return []fpc.Airport{}, nil }
	return deep.MustCopy(sp.Airports), nil
}

func (sp StaticProvider)ListFlights(ctx context.Context) ([]fpc.Flight, error) {
	if err := ctx.Err(); err != nil { return nil, err }
	if sp.Flights == nil { return []fpc.Flight{}, nil }
	return deep.MustCopy(sp.Flights), nil
}

// {{{ builtinAirports

var builtinAirports = []fpc.Airport{
	{Code:"PEK", Name:"Beijing Capital", Latitude:40.0724, Longitude:116.5971, City:"Beijing", Country:"China"},
	{Code:"PVG", Name:"Shanghai Pudong", Latitude:31.1559, Longitude:121.8053, City:"Shanghai", Country:"China"},
	{Code:"SHA", Name:"Shanghai Hongqiao", Latitude:31.1959, Longitude:121.3417, City:"Shanghai", Country:"China"},
	{Code:"CAN", Name:"Guangzhou Baiyun", Latitude:23.3896, Longitude:113.3057, City:"Guangzhou", Country:"China"},
	{Code:"PKX", Name:"Beijing Daxing", Latitude:39.509945, Longitude:116.41092, City:"Beijing", Country:"China"},
	{Code:"HGH", Name:"Hangzhou Xiaoshan", Latitude:30.234345, Longitude:120.437058, City:"Hangzhou", Country:"China"},
	{Code:"SIN", Name:"Singapore Changi", Latitude:1.3644, Longitude:103.9915, City:"Singapore", Country:"Singapore"},
	{Code:"HKG", Name:"Hong Kong Chek Lap Kok", Latitude:22.3080, Longitude:113.9185, City:"Hong Kong", Country:"China"},
	{Code:"SEA", Name:"Seattle-Tacoma", Latitude:47.4502, Longitude:-122.3088, City:"Seattle", Country:"USA"},
	{Code:"XMN", Name:"Xiamen Gaoqi", Latitude:24.5443, Longitude:118.128, City:"Xiamen", Country:"China"},
	{Code:"HKT", Name:"Phuket", Latitude:8.113, Longitude:98.317, City:"Phuket", Country:"Thailand"},
}

// }}}
// {{{ builtinFlights

var builtinFlights = []fpc.Flight{
	{FlightNumber:"CA1510", DepartureTime:"2021-10-11T11:00:00", DepartureAirport:"HGH", ArrivalAirport:"PEK"},
	{FlightNumber:"MU5458", DepartureTime:"2021-10-15T18:30:00", DepartureAirport:"PKX", ArrivalAirport:"HGH"},
	{FlightNumber:"MF9051", DepartureTime:"2023-05-04T18:50:00", DepartureAirport:"HGH", ArrivalAirport:"SIN"},
	{FlightNumber:"CZ352", DepartureTime:"2023-05-16T08:00:00", DepartureAirport:"SIN", ArrivalAirport:"CAN"},
	{FlightNumber:"CZ3501", DepartureTime:"2023-05-16T15:10:00", DepartureAirport:"CAN", ArrivalAirport:"HGH"},
	{FlightNumber:"MF873", DepartureTime:"2023-07-28T08:45:00", DepartureAirport:"HGH", ArrivalAirport:"SIN"},
	{FlightNumber:"MF874", DepartureTime:"2023-08-14T15:10:00", DepartureAirport:"SIN", ArrivalAirport:"HGH"},
	{FlightNumber:"MF863", DepartureTime:"2024-03-24T09:15:00", DepartureAirport:"HGH", ArrivalAirport:"SIN"},
	{FlightNumber:"SQ874", DepartureTime:"2024-04-03T07:25:00", DepartureAirport:"SIN", ArrivalAirport:"HKG"},
	{FlightNumber:"HX128", DepartureTime:"2024-04-03T21:10:00", DepartureAirport:"HKG", ArrivalAirport:"HGH"},
	{FlightNumber:"MF8703", DepartureTime:"2024-07-10T08:15:00", DepartureAirport:"HGH", ArrivalAirport:"SIN"},
	{FlightNumber:"MF8704", DepartureTime:"2024-07-24T14:50:00", DepartureAirport:"SIN", ArrivalAirport:"HGH"},
	{FlightNumber:"MF8703", DepartureTime:"2024-09-01T08:15:00", DepartureAirport:"HGH", ArrivalAirport:"SIN"},
	{FlightNumber:"MF8704", DepartureTime:"2024-09-14T14:50:00", DepartureAirport:"SIN", ArrivalAirport:"HGH"},
	{FlightNumber:"HU7278", DepartureTime:"2024-10-20T11:30:00", DepartureAirport:"HGH", ArrivalAirport:"PEK"},
	{FlightNumber:"CA1732", DepartureTime:"2024-10-25T21:30:00", DepartureAirport:"PEK", ArrivalAirport:"HGH"},
	{FlightNumber:"MF8703", DepartureTime:"2024-11-17T08:10:00", DepartureAirport:"HGH", ArrivalAirport:"SIN"},
	{FlightNumber:"MF8704", DepartureTime:"2024-11-30T14:50:00", DepartureAirport:"SIN", ArrivalAirport:"HGH"},
	{FlightNumber:"DL280", DepartureTime:"2025-02-05T19:05:00", DepartureAirport:"PVG", ArrivalAirport:"SEA"},
	{FlightNumber:"DL281", DepartureTime:"2025-02-21T11:30:00", DepartureAirport:"SEA", ArrivalAirport:"PVG"},
	{FlightNumber:"CX959", DepartureTime:"2025-03-02T11:25:00", DepartureAirport:"HGH", ArrivalAirport:"HKG"},
	{FlightNumber:"CX635", DepartureTime:"2025-03-02T15:05:00", DepartureAirport:"HKG", ArrivalAirport:"SIN"},
	{FlightNumber:"MF8704", DepartureTime:"2025-03-15T14:50:00", DepartureAirport:"SIN", ArrivalAirport:"HGH"},
	{FlightNumber:"MF8594", DepartureTime:"2025-05-18T13:40:00", DepartureAirport:"HGH", ArrivalAirport:"XMN"},
	{FlightNumber:"MF885", DepartureTime:"2025-05-18T18:00:00", DepartureAirport:"XMN", ArrivalAirport:"SIN"},
	{FlightNumber:"MF8704", DepartureTime:"2025-05-31T14:50:00", DepartureAirport:"SIN", ArrivalAirport:"HGH"},
	{FlightNumber:"CA8367", DepartureTime:"2025-07-01T17:05:00", DepartureAirport:"HGH", ArrivalAirport:"PKX"},
	{FlightNumber:"CA1708", DepartureTime:"2025-07-05T09:30:00", DepartureAirport:"PEK", ArrivalAirport:"HGH"},
	{FlightNumber:"CA1723", DepartureTime:"2025-07-20T18:00:00", DepartureAirport:"HGH", ArrivalAirport:"PEK"},
	{FlightNumber:"CA1714", DepartureTime:"2025-07-26T12:30:00", DepartureAirport:"PEK", ArrivalAirport:"HGH"},
	{FlightNumber:"MF8703", DepartureTime:"2025-07-27T08:15:00", DepartureAirport:"HGH", ArrivalAirport:"SIN"},
	{FlightNumber:"TR652", DepartureTime:"2025-08-01T18:35:00", DepartureAirport:"SIN", ArrivalAirport:"HKT"},
	{FlightNumber:"TR653", DepartureTime:"2025-08-03T20:35:00", DepartureAirport:"HKT", ArrivalAirport:"SIN"},
	{FlightNumber:"MF8704", DepartureTime:"2025-08-09T14:50:00", DepartureAirport:"SIN", ArrivalAirport:"HGH"},
	{FlightNumber:"CA1719", DepartureTime:"2025-08-24T16:00:00", DepartureAirport:"HGH", ArrivalAirport:"PEK"},
	{FlightNumber:"CA1706", DepartureTime:"2025-08-30T08:30:00", DepartureAirport:"PEK", ArrivalAirport:"HGH"},
	{FlightNumber:"CX959", DepartureTime:"2025-10-08T11:25:00", DepartureAirport:"HGH", ArrivalAirport:"HKG"},
	{FlightNumber:"CX635", DepartureTime:"2025-10-08T15:15:00", DepartureAirport:"HKG", ArrivalAirport:"SIN"},
	{FlightNumber:"CA1725", DepartureTime:"2025-12-01T19:00:00", DepartureAirport:"HGH", ArrivalAirport:"PEK"},
	{FlightNumber:"HU7577", DepartureTime:"2025-12-05T11:10:00", DepartureAirport:"PEK", ArrivalAirport:"HGH"},
	{FlightNumber:"CX959", DepartureTime:"2025-12-07T11:25:00", DepartureAirport:"HGH", ArrivalAirport:"HKG"},
	{FlightNumber:"CX635", DepartureTime:"2025-12-07T15:10:00", DepartureAirport:"HKG", ArrivalAirport:"SIN"},
	{FlightNumber:"MF8704", DepartureTime:"2025-12-20T15:00:00", DepartureAirport:"SIN", ArrivalAirport:"HGH"},
	{FlightNumber:"CA1723", DepartureTime:"2026-02-08T18:30:00", DepartureAirport:"HGH", ArrivalAirport:"PEK"},
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
