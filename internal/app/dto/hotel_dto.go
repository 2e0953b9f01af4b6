package dto

import (
	"net/http"

	"travel-explorer-service/internal/pkg/exception"
)

// HotelRecord is the display shape for a single accommodation result.
// Synthesized entirely in-process; never mutated after creation.
type HotelRecord struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Address            string   `json:"address"`
	Rating             float64  `json:"rating"`
	PricePerNight      int      `json:"pricePerNight"`
	TotalPrice         int      `json:"totalPrice"`
	Nights             int      `json:"nights"`
	Currency           string   `json:"currency"`
	Amenities          []string `json:"amenities"`
	Thumbnail          string   `json:"thumbnail"`
	Description        string   `json:"description"`
	ExpediaBookingLink string   `json:"expediaBookingLink"`
}

type HotelSearchCriteria struct {
	City     string `json:"city" validate:"required"`
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Guests   int    `json:"guests" validate:"required,min=1"`
}

func (c *HotelSearchCriteria) Validate() error {
	if err := ValidateSingleError(c); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

type HotelSearchResponse struct {
	Hotels []HotelRecord `json:"hotels"`
}
