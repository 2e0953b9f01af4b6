package dto

import (
	"net/http"

	"travel-explorer-service/internal/pkg/exception"
)

// TripOverview holds at most one selected flight and one selected hotel per
// browser session.
type TripOverview struct {
	Flight *FlightRecord `json:"flight,omitempty"`
	Hotel  *HotelRecord  `json:"hotel,omitempty"`
}

type SaveTripFlightRequest struct {
	Flight FlightRecord `json:"flight"`
}

func (r *SaveTripFlightRequest) Bind(_ *http.Request) error {
	if r.Flight.Airline == "" && r.Flight.FlightNumber == "" {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "flight selection is required",
		}
	}

	return nil
}

type SaveTripHotelRequest struct {
	Hotel HotelRecord `json:"hotel"`
}

func (r *SaveTripHotelRequest) Bind(_ *http.Request) error {
	if r.Hotel.ID == "" && r.Hotel.Name == "" {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "hotel selection is required",
		}
	}

	return nil
}
