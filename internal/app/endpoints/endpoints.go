package endpoints

// Endpoints groups every HTTP-facing endpoint of the service.
type Endpoints struct {
	FlightEndpoint  FlightEndpoint
	PickupEndpoint  PickupEndpoint
	AirportEndpoint AirportEndpoint
}
