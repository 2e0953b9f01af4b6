//go:build unit

package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"travel-explorer-service/internal/app/dto"
	"travel-explorer-service/internal/pkg/cache"
	"travel-explorer-service/internal/pkg/demodata"
)

func newHotelService() *HotelService {
	return NewHotelService(
		cache.NewStore[[]dto.HotelRecord](time.Hour),
		demodata.NewGenerator(rand.New(rand.NewSource(1))))
}

func TestHotelService_SearchHotels(t *testing.T) {
	s := newHotelService()

	criteria := dto.HotelSearchCriteria{
		City:     "Paris",
		CheckIn:  "2024-06-01",
		CheckOut: "2024-06-04",
		Guests:   2,
	}

	got, err := s.SearchHotels(context.Background(), criteria)
	assert.NoError(t, err)
	assert.Len(t, got, 8)

	for i, h := range got {
		assert.Equal(t, 3, h.Nights, "hotel %d", i)
		assert.Equal(t, (h.PricePerNight+25)*3, h.TotalPrice, "hotel %d", i)
	}
}

func TestHotelService_SearchHotels_CacheHitIsIdentical(t *testing.T) {
	s := newHotelService()

	criteria := dto.HotelSearchCriteria{
		City:     "Rome",
		CheckIn:  "2024-03-10",
		CheckOut: "2024-03-12",
		Guests:   1,
	}

	first, err := s.SearchHotels(context.Background(), criteria)
	assert.NoError(t, err)

	// randomness happens only on a miss; a hit returns the stored batch
	second, err := s.SearchHotels(context.Background(), criteria)
	assert.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("cache hit returned different records (-want +got):\n%s", diff)
	}
}

func TestHotelService_SearchHotels_KeyNormalization(t *testing.T) {
	s := newHotelService()

	first, err := s.SearchHotels(context.Background(), dto.HotelSearchCriteria{
		City: "Paris", CheckIn: "2024-06-01", CheckOut: "2024-06-04", Guests: 2,
	})
	assert.NoError(t, err)

	// city is lowercased in the cache key
	second, err := s.SearchHotels(context.Background(), dto.HotelSearchCriteria{
		City: "PARIS", CheckIn: "2024-06-01", CheckOut: "2024-06-04", Guests: 2,
	})
	assert.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("normalized criteria returned different records (-want +got):\n%s", diff)
	}
}

func TestHotelService_SearchHotels_DifferentGuestsMissCache(t *testing.T) {
	s := newHotelService()

	_, err := s.SearchHotels(context.Background(), dto.HotelSearchCriteria{
		City: "Oslo", CheckIn: "2024-02-01", CheckOut: "2024-02-03", Guests: 1,
	})
	assert.NoError(t, err)

	three, err := s.SearchHotels(context.Background(), dto.HotelSearchCriteria{
		City: "Oslo", CheckIn: "2024-02-01", CheckOut: "2024-02-03", Guests: 3,
	})
	assert.NoError(t, err)

	// three guests: surcharge of $50 on top of the nightly rate
	for i, h := range three {
		assert.Equal(t, (h.PricePerNight+50)*2, h.TotalPrice, "hotel %d", i)
	}
}

func TestHotelService_SearchHotels_GenerationErrorSurfaces(t *testing.T) {
	s := newHotelService()

	_, err := s.SearchHotels(context.Background(), dto.HotelSearchCriteria{
		City: "Paris", CheckIn: "not-a-date", CheckOut: "2024-06-04", Guests: 2,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrAccommodationRetrieval),
		"expected ErrAccommodationRetrieval, got %v", err)
}
