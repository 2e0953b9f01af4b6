package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"travel-explorer-service/internal/app/dto"
	"travel-explorer-service/internal/pkg/aviationstack"
	"travel-explorer-service/internal/pkg/bookinglink"
	"travel-explorer-service/internal/pkg/cache"
	"travel-explorer-service/internal/pkg/demodata"
	"travel-explorer-service/internal/pkg/utils"
)

type FlightAPI interface {
	Search(ctx context.Context, origin, destination, date string) ([]aviationstack.Flight, error)
}

// FlightService answers flight lookups from the cache, the live API, or the
// demo generator, in that order. It never fails a request: any upstream
// problem degrades to synthetic data.
type FlightService struct {
	client FlightAPI
	cache  *cache.Store[[]dto.FlightRecord]
	demo   *demodata.Generator

	// rng prices live results; the API carries no fares
	mu  sync.Mutex
	rng *rand.Rand
}

func NewFlightService(client FlightAPI, resultCache *cache.Store[[]dto.FlightRecord],
	demo *demodata.Generator, rng *rand.Rand) *FlightService {
	return &FlightService{
		client: client,
		cache:  resultCache,
		demo:   demo,
		rng:    rng,
	}
}

// SearchFlights returns the flights for a route and date. Demo fallbacks for
// a malformed or empty upstream response are cached like real results;
// fallbacks for transport or configuration failures are not, so a later
// request gets another shot at the API.
func (s *FlightService) SearchFlights(ctx context.Context, criteria dto.FlightSearchCriteria) ([]dto.FlightRecord, error) {
	key := s.cacheKey(criteria)

	if records, ok := s.cache.Get(key); ok {
		slog.DebugContext(ctx, "flight cache hit", slog.String("key", key))

		return records, nil
	}

	entries, err := s.client.Search(ctx, criteria.Origin, criteria.Destination, criteria.Date)
	if err != nil {
		// a missing API key is invisible to callers once demo data kicks
		// in, so log that case at error level
		level := slog.LevelWarn
		if errors.Is(err, aviationstack.ErrMissingConfig) {
			level = slog.LevelError
		}

		slog.Log(ctx, level, "flight lookup failed, serving demo flights",
			slog.String("origin", criteria.Origin),
			slog.String("destination", criteria.Destination),
			slog.String("error", err.Error()))

		demo := s.demo.Flights(criteria.Origin, criteria.Destination, criteria.Date)

		if errors.Is(err, aviationstack.ErrMalformedResponse) {
			s.cache.Set(key, demo)
		}

		return demo, nil
	}

	records := s.mapFlights(ctx, entries, criteria)
	if len(records) == 0 {
		slog.InfoContext(ctx, "no flights for route, serving demo flights",
			slog.String("origin", criteria.Origin),
			slog.String("destination", criteria.Destination))

		records = s.demo.Flights(criteria.Origin, criteria.Destination, criteria.Date)
	}

	s.cache.Set(key, records)

	return records, nil
}

func (s *FlightService) cacheKey(criteria dto.FlightSearchCriteria) string {
	return fmt.Sprintf("flight:cache:%s:%s:%s",
		strings.ToUpper(criteria.Origin), strings.ToUpper(criteria.Destination), criteria.Date)
}

// mapFlights converts API entries to display records. A failing entry is
// logged and dropped; the rest of the batch goes through.
func (s *FlightService) mapFlights(ctx context.Context,
	entries []aviationstack.Flight, criteria dto.FlightSearchCriteria) []dto.FlightRecord {
	records := make([]dto.FlightRecord, 0, len(entries))

	for i, entry := range entries {
		record, err := s.mapFlight(entry, criteria)
		if err != nil {
			slog.WarnContext(ctx, "dropping unmappable flight entry",
				slog.Int("index", i), slog.String("error", err.Error()))

			continue
		}

		records = append(records, record)
	}

	return records
}

func (s *FlightService) mapFlight(entry aviationstack.Flight,
	criteria dto.FlightSearchCriteria) (dto.FlightRecord, error) {
	record := dto.FlightRecord{
		Airline:          "Unknown Airline",
		FlightNumber:     "Unknown",
		DepartureAirport: "Unknown",
		DepartureTime:    "Unknown",
		ArrivalAirport:   "Unknown",
		ArrivalTime:      "Unknown",
		Duration:         "Unknown",
		Status:           "Unknown",
		Price:            s.livePrice(),
		BookingLinks: map[string]string{
			"expedia":    bookinglink.FlightExpedia(criteria.Origin, criteria.Destination, criteria.Date),
			"skyscanner": bookinglink.FlightSkyscanner(criteria.Origin, criteria.Destination, criteria.Date),
		},
	}

	if entry.Airline.Name != "" {
		record.Airline = entry.Airline.Name
	}

	if entry.Airline.IATA != "" {
		record.FlightNumber = entry.Airline.IATA + entry.FlightInfo.Number
	}

	if entry.Departure.Airport != "" {
		record.DepartureAirport = entry.Departure.Airport
	}

	if entry.Arrival.Airport != "" {
		record.ArrivalAirport = entry.Arrival.Airport
	}

	var departure, arrival time.Time

	if entry.Departure.Scheduled != "" {
		t, err := time.Parse(time.RFC3339, entry.Departure.Scheduled)
		if err != nil {
			return dto.FlightRecord{}, fmt.Errorf("parse departure schedule: %w", err)
		}

		departure = t
		record.DepartureTime = utils.FormatDisplayTime(t)
	}

	if entry.Arrival.Scheduled != "" {
		t, err := time.Parse(time.RFC3339, entry.Arrival.Scheduled)
		if err != nil {
			return dto.FlightRecord{}, fmt.Errorf("parse arrival schedule: %w", err)
		}

		arrival = t
		record.ArrivalTime = utils.FormatDisplayTime(t)
	}

	if !departure.IsZero() && !arrival.IsZero() {
		record.Duration = utils.FormatDuration(departure, arrival)
	}

	if entry.FlightStatus != "" {
		record.Status = utils.TitleFirst(entry.FlightStatus)
	}

	return record, nil
}

// livePrice prices an API result in the $100-$599 range, a narrower band
// than the demo generator uses.
func (s *FlightService) livePrice() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fmt.Sprintf("$%d", 100+s.rng.Intn(500))
}
