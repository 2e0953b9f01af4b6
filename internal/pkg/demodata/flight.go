package demodata

import (
	"fmt"
	"strings"
	"time"

	"travel-explorer-service/internal/app/dto"
	"travel-explorer-service/internal/pkg/bookinglink"
	"travel-explorer-service/internal/pkg/utils"
)

const demoFlightCount = 5

type airline struct {
	name string
	code string
}

var demoAirlines = [...]airline{
	{"American Airlines", "AA"},
	{"Delta", "DL"},
	{"United", "UA"},
	{"British Airways", "BA"},
	{"Emirates", "EK"},
	{"Lufthansa", "LH"},
}

// demoStatuses lists four labels but the draw below stays within the first
// three, so "Boarding" is never produced. Intentional; do not widen the index.
var demoStatuses = [...]string{"Scheduled", "On Time", "Delayed", "Boarding"}

// Flights returns exactly five synthetic flights for the route, spaced three
// hours apart starting at 06:00 on the given date.
func (g *Generator) Flights(origin, destination, date string) []dto.FlightRecord {
	g.mu.Lock()
	defer g.mu.Unlock()

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		// unparseable dates still produce flights, pinned to today
		day = time.Now().UTC().Truncate(24 * time.Hour)
	}

	flights := make([]dto.FlightRecord, 0, demoFlightCount)

	for i := 0; i < demoFlightCount; i++ {
		carrier := demoAirlines[i%len(demoAirlines)]

		departure := time.Date(day.Year(), day.Month(), day.Day(),
			6+i*3, g.rng.Intn(60), 0, 0, time.UTC)

		durationHours := 2 + g.rng.Intn(4)
		arrival := departure.Add(time.Duration(durationHours) * time.Hour)

		flights = append(flights, dto.FlightRecord{
			Airline:          carrier.name,
			FlightNumber:     fmt.Sprintf("%s%d", carrier.code, 100+g.rng.Intn(900)),
			DepartureAirport: strings.ToUpper(origin) + " Airport",
			DepartureTime:    utils.FormatDisplayTime(departure),
			ArrivalAirport:   strings.ToUpper(destination) + " Airport",
			ArrivalTime:      utils.FormatDisplayTime(arrival),
			Duration:         fmt.Sprintf("%dh %dm", durationHours, g.rng.Intn(60)),
			Status:           demoStatuses[g.rng.Intn(3)],
			Price:            fmt.Sprintf("$%d", 200+g.rng.Intn(600)),
			BookingLinks: map[string]string{
				"expedia":    bookinglink.FlightExpedia(origin, destination, date),
				"skyscanner": bookinglink.FlightSkyscanner(origin, destination, date),
			},
		})
	}

	return flights
}
