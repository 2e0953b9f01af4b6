//go:build unit

package demodata

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func TestGenerator_Flights(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(42)))

	flights := g.Flights("jfk", "lax", "2024-07-01")

	if len(flights) != 5 {
		t.Fatalf("expected 5 demo flights, got %d", len(flights))
	}

	wantAirlines := []string{"American Airlines", "Delta", "United", "British Airways", "Emirates"}
	reachableStatuses := map[string]bool{"Scheduled": true, "On Time": true, "Delayed": true}

	for i, f := range flights {
		if f.Airline != wantAirlines[i] {
			t.Errorf("flight %d: airline = %q, want %q", i, f.Airline, wantAirlines[i])
		}

		wantPrefix := wantCodeFor(f.Airline)
		if !strings.HasPrefix(f.FlightNumber, wantPrefix) {
			t.Errorf("flight %d: flight number %q does not match airline code %q", i, f.FlightNumber, wantPrefix)
		}

		suffix, err := strconv.Atoi(strings.TrimPrefix(f.FlightNumber, wantPrefix))
		if err != nil || suffix < 100 || suffix > 999 {
			t.Errorf("flight %d: flight number suffix %q outside 100-999", i, f.FlightNumber)
		}

		if f.DepartureAirport != "JFK Airport" || f.ArrivalAirport != "LAX Airport" {
			t.Errorf("flight %d: airports not uppercased: %q -> %q", i, f.DepartureAirport, f.ArrivalAirport)
		}

		if !reachableStatuses[f.Status] {
			t.Errorf("flight %d: status %q outside the reachable set", i, f.Status)
		}

		price, err := strconv.Atoi(strings.TrimPrefix(f.Price, "$"))
		if err != nil || price < 200 || price > 799 {
			t.Errorf("flight %d: price %q outside $200-$799", i, f.Price)
		}

		var h, m int
		if _, err := fmt.Sscanf(f.Duration, "%dh %dm", &h, &m); err != nil || h < 2 || h > 5 || m < 0 || m > 59 {
			t.Errorf("flight %d: duration %q outside bounds", i, f.Duration)
		}

		if !strings.Contains(f.BookingLinks["expedia"], "originPlace=JFK") ||
			!strings.Contains(f.BookingLinks["expedia"], "destinationPlace=LAX") ||
			!strings.Contains(f.BookingLinks["expedia"], "departDate=2024-07-01") {
			t.Errorf("flight %d: expedia link missing route details: %s", i, f.BookingLinks["expedia"])
		}

		if !strings.HasSuffix(f.BookingLinks["skyscanner"], "/JFK/LAX/2024-07-01") {
			t.Errorf("flight %d: skyscanner link = %s", i, f.BookingLinks["skyscanner"])
		}
	}
}

func wantCodeFor(airline string) string {
	codes := map[string]string{
		"American Airlines": "AA",
		"Delta":             "DL",
		"United":            "UA",
		"British Airways":   "BA",
		"Emirates":          "EK",
		"Lufthansa":         "LH",
	}

	return codes[airline]
}

func TestGenerator_Flights_DepartureSpacing(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(7)))

	flights := g.Flights("sfo", "ord", "2024-03-15")

	// departures start at 06:xx and advance three hours per record
	wantHours := []string{"6:", "9:", "12:", "3:", "6:"}
	wantMeridiem := []string{"AM", "AM", "PM", "PM", "PM"}

	for i, f := range flights {
		if !strings.HasPrefix(f.DepartureTime, "3/15/2024, ") {
			t.Errorf("flight %d: departure %q not on requested date", i, f.DepartureTime)
		}

		clock := strings.TrimPrefix(f.DepartureTime, "3/15/2024, ")
		if !strings.HasPrefix(clock, wantHours[i]) || !strings.HasSuffix(clock, wantMeridiem[i]) {
			t.Errorf("flight %d: departure clock %q, want hour %s%s", i, clock, wantHours[i], wantMeridiem[i])
		}
	}
}

func TestGenerator_Flights_SeededDeterminism(t *testing.T) {
	first := NewGenerator(rand.New(rand.NewSource(99))).Flights("jfk", "lax", "2024-07-01")
	second := NewGenerator(rand.New(rand.NewSource(99))).Flights("jfk", "lax", "2024-07-01")

	for i := range first {
		if first[i].FlightNumber != second[i].FlightNumber ||
			first[i].Price != second[i].Price ||
			first[i].Duration != second[i].Duration ||
			first[i].DepartureTime != second[i].DepartureTime {
			t.Fatalf("same seed produced different records at index %d", i)
		}
	}
}
