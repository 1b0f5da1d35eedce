package chronicle

var testAirports = []Airport{
	{Code:"PEK", Name:"Beijing Capital", Latitude:40.0799, Longitude:116.6031, City:"Beijing", Country:"China"},
	{Code:"PVG", Name:"Shanghai Pudong", Latitude:31.1443, Longitude:121.8083, City:"Shanghai", Country:"China"},
	{Code:"LAX", Name:"Los Angeles", Latitude:33.9416, Longitude:-118.4085, City:"Los Angeles", Country:"USA"},
	{Code:"NRT", Name:"Narita", Latitude:35.7720, Longitude:140.3929, City:"Tokyo", Country:"Japan"},
	// For the date line
	{Code:"EAST", Name:"East", Latitude:0, Longitude:170},
	{Code:"WEST", Name:"West", Latitude:0, Longitude:-170},
}

var testFlights = []Flight{
	{DepartureAirport:"PEK", ArrivalAirport:"PVG", FlightNumber:"CA1234",
		DepartureTime:"2023-01-01T10:00:00Z", ArrivalTime:"2023-01-01T12:00:00Z"},
	{DepartureAirport:"PVG", ArrivalAirport:"PEK", FlightNumber:"CA1235",
		DepartureTime:"2023-01-02T10:00:00Z", ArrivalTime:"2023-01-02T12:00:00Z"},
	{DepartureAirport:"NRT", ArrivalAirport:"LAX", FlightNumber:"JL0062",
		DepartureTime:"2023-01-03T17:00:00Z", ArrivalTime:"2023-01-03T11:00:00Z"},
}

func find(pfs []ProcessedFlight, dep, arr string) *ProcessedFlight {
	for i,pf := range pfs {
		if pf.DepartureAirport == dep && pf.ArrivalAirport == arr { return &pfs[i] }
	}
	return nil
}
