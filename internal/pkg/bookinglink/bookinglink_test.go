//go:build unit

package bookinglink

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlightExpedia_Closure(t *testing.T) {
	linkRequest := func(origin, destination, date string, wantParams map[string]string) func(t *testing.T) {
		return func(t *testing.T) {
			link := FlightExpedia(origin, destination, date)

			parsed, err := url.Parse(link)
			if err != nil {
				t.Fatalf("link is not a valid URL: %v", err)
			}

			if parsed.Host != "www.expedia.com" || parsed.Path != "/Flights-Search" {
				t.Fatalf("unexpected base: %s", link)
			}

			got := map[string]string{}
			for key := range parsed.Query() {
				got[key] = parsed.Query().Get(key)
			}

			if diff := cmp.Diff(wantParams, got); diff != "" {
				t.Fatalf("query mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("uppercases_codes", linkRequest("jfk", "lax", "2024-01-01", map[string]string{
		"mode":             "search",
		"originPlace":      "JFK",
		"destinationPlace": "LAX",
		"departDate":       "2024-01-01",
		"adults":           "1",
	}))

	t.Run("malformed_input_passes_through", linkRequest("not a code", "x", "someday", map[string]string{
		"mode":             "search",
		"originPlace":      "NOT A CODE",
		"destinationPlace": "X",
		"departDate":       "someday",
		"adults":           "1",
	}))
}

func TestFlightSkyscanner_Closure(t *testing.T) {
	linkRequest := func(origin, destination, date, want string) func(t *testing.T) {
		return func(t *testing.T) {
			got := FlightSkyscanner(origin, destination, date)
			if got != want {
				t.Fatalf("expected %s, got %s", want, got)
			}
		}
	}

	t.Run("path_segments_no_query", linkRequest("jfk", "lax", "2024-01-01",
		"https://www.skyscanner.com/transport/flights/JFK/LAX/2024-01-01"))
}

func TestHotelExpedia(t *testing.T) {
	link := HotelExpedia("Grand Hotel", "Paris", "2024-06-01", "2024-06-04", 2)

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link is not a valid URL: %v", err)
	}

	q := parsed.Query()
	if got := q.Get("destination"); got != "Grand Hotel, Paris" {
		t.Fatalf("destination = %q", got)
	}
	if q.Get("startDate") != "2024-06-01" || q.Get("endDate") != "2024-06-04" {
		t.Fatalf("unexpected dates in %s", link)
	}
	if q.Get("adults") != "2" {
		t.Fatalf("adults = %q", q.Get("adults"))
	}

	// destination must be URL-encoded in the raw link
	if strings.Contains(link, "Grand Hotel, Paris") {
		t.Fatalf("destination not encoded: %s", link)
	}
}
