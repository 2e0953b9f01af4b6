package endpoints

// Endpoints collects every service endpoint exposed over HTTP.
type Endpoints struct {
	Flight FlightEndpoint
	Hotel  HotelEndpoint
	Trip   TripEndpoint
}
