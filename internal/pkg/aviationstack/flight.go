package aviationstack

// SearchResponse is the /flights payload. Data is a pointer so a response
// with no "data" field at all can be told apart from an empty result set.
type SearchResponse struct {
	Data *[]Flight `json:"data"`
}

// Flight is one entry of the data array. Every field is optional on the
// wire; the lookup service fills in display fallbacks.
type Flight struct {
	FlightStatus string     `json:"flight_status"`
	Departure    Waypoint   `json:"departure"`
	Arrival      Waypoint   `json:"arrival"`
	Airline      Airline    `json:"airline"`
	FlightInfo   FlightInfo `json:"flight"`
}

type Waypoint struct {
	Airport   string `json:"airport"`
	Scheduled string `json:"scheduled"`
}

type Airline struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
}

type FlightInfo struct {
	Number string `json:"number"`
}
