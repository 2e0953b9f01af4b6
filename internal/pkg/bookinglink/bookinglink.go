// Package bookinglink builds deep links into third-party booking sites.
// The links pre-fill the site's search form; they are never called or
// validated by this service. Inputs pass through unvalidated, so a malformed
// airport code or date ends up in the URL unchanged.
package bookinglink

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	flightExpediaBaseURL    = "https://www.expedia.com/Flights-Search"
	flightSkyscannerBaseURL = "https://www.skyscanner.com/transport/flights"
	hotelExpediaBaseURL     = "https://www.expedia.com/Hotels"
)

// FlightExpedia returns an Expedia flight search deep link for a one-adult
// trip between the given airports.
func FlightExpedia(origin, destination, date string) string {
	params := url.Values{}
	params.Set("mode", "search")
	params.Set("originPlace", strings.ToUpper(origin))
	params.Set("destinationPlace", strings.ToUpper(destination))
	params.Set("departDate", date)
	params.Set("adults", "1")

	return flightExpediaBaseURL + "?" + params.Encode()
}

// FlightSkyscanner returns a Skyscanner flight search deep link. Skyscanner
// takes the route as path segments rather than a query string.
func FlightSkyscanner(origin, destination, date string) string {
	return fmt.Sprintf("%s/%s/%s/%s",
		flightSkyscannerBaseURL, strings.ToUpper(origin), strings.ToUpper(destination), date)
}

// HotelExpedia returns an Expedia hotel search deep link for the named hotel.
func HotelExpedia(name, city, checkIn, checkOut string, guests int) string {
	params := url.Values{}
	params.Set("destination", name+", "+city)
	params.Set("startDate", checkIn)
	params.Set("endDate", checkOut)
	params.Set("adults", strconv.Itoa(guests))

	return hotelExpediaBaseURL + "?" + params.Encode()
}
