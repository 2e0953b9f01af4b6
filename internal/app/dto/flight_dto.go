package dto

import (
	"net/http"

	"travel-explorer-service/internal/pkg/exception"
)

// FlightRecord is the display shape for a single flight result. Records are
// built once per lookup (from the live API or the demo generator) and are
// never mutated afterwards, so cached slices can be returned as-is.
type FlightRecord struct {
	Airline          string            `json:"airline"`
	FlightNumber     string            `json:"flightNumber"`
	DepartureAirport string            `json:"departureAirport"`
	DepartureTime    string            `json:"departureTime"`
	ArrivalAirport   string            `json:"arrivalAirport"`
	ArrivalTime      string            `json:"arrivalTime"`
	Duration         string            `json:"duration"`
	Status           string            `json:"status"`
	Price            string            `json:"price"`
	BookingLinks     map[string]string `json:"bookingLinks"`
}

// FlightSearchCriteria carries the query parameters of a flight lookup.
// Airport codes are passed through as received; the service uppercases them
// when building cache keys and upstream queries.
type FlightSearchCriteria struct {
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Date        string `json:"date" validate:"required"`
}

func (c *FlightSearchCriteria) Validate() error {
	if err := ValidateSingleError(c); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

type FlightSearchResponse struct {
	Flights []FlightRecord `json:"flights"`
}
