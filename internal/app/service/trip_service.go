package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travel-explorer-service/internal/app/dto"
	"travel-explorer-service/internal/pkg/trip"
)

type TripStore interface {
	Get(ctx context.Context, sessionID string) (dto.TripOverview, error)
	Save(ctx context.Context, sessionID string, overview dto.TripOverview, expiration time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

// TripService manages the per-session trip overview: at most one selected
// flight and one selected hotel, kept for the lifetime of the session cookie.
type TripService struct {
	store TripStore
	ttl   time.Duration
}

func NewTripService(store TripStore, ttl time.Duration) *TripService {
	return &TripService{
		store: store,
		ttl:   ttl,
	}
}

// Overview returns the session's current selection. A session with no saved
// trip yet gets an empty overview, not an error.
func (s *TripService) Overview(ctx context.Context, sessionID string) (dto.TripOverview, error) {
	overview, err := s.store.Get(ctx, sessionID)
	if errors.Is(err, trip.ErrNotFound) {
		return dto.TripOverview{}, nil
	}

	if err != nil {
		return dto.TripOverview{}, fmt.Errorf("load trip overview: %w", err)
	}

	return overview, nil
}

func (s *TripService) SaveFlight(ctx context.Context, sessionID string, flight dto.FlightRecord) error {
	overview, err := s.store.Get(ctx, sessionID)
	if err != nil && !errors.Is(err, trip.ErrNotFound) {
		return fmt.Errorf("load trip overview: %w", err)
	}

	overview.Flight = &flight

	if err := s.store.Save(ctx, sessionID, overview, s.ttl); err != nil {
		return fmt.Errorf("save trip flight: %w", err)
	}

	return nil
}

func (s *TripService) SaveHotel(ctx context.Context, sessionID string, hotel dto.HotelRecord) error {
	overview, err := s.store.Get(ctx, sessionID)
	if err != nil && !errors.Is(err, trip.ErrNotFound) {
		return fmt.Errorf("load trip overview: %w", err)
	}

	overview.Hotel = &hotel

	if err := s.store.Save(ctx, sessionID, overview, s.ttl); err != nil {
		return fmt.Errorf("save trip hotel: %w", err)
	}

	return nil
}

func (s *TripService) Remove(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("remove trip: %w", err)
	}

	return nil
}
