package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"travel-explorer-service/internal/app/dto"
	"travel-explorer-service/internal/pkg/cache"
	"travel-explorer-service/internal/pkg/demodata"
)

// hotelResultCount is the fixed batch size of a hotel lookup.
const hotelResultCount = 8

// HotelService answers accommodation lookups from the cache or the mock
// generator. There is no live hotel API; unlike flights, a generation
// failure surfaces to the caller instead of being papered over.
type HotelService struct {
	cache     *cache.Store[[]dto.HotelRecord]
	generator *demodata.Generator
}

func NewHotelService(resultCache *cache.Store[[]dto.HotelRecord], generator *demodata.Generator) *HotelService {
	return &HotelService{
		cache:     resultCache,
		generator: generator,
	}
}

func (s *HotelService) SearchHotels(ctx context.Context, criteria dto.HotelSearchCriteria) ([]dto.HotelRecord, error) {
	key := s.cacheKey(criteria)

	if hotels, ok := s.cache.Get(key); ok {
		slog.DebugContext(ctx, "hotel cache hit", slog.String("key", key))

		return hotels, nil
	}

	hotels, err := s.generator.Hotels(criteria.City, hotelResultCount,
		criteria.CheckIn, criteria.CheckOut, criteria.Guests)
	if err != nil {
		slog.ErrorContext(ctx, "hotel generation failed",
			slog.String("city", criteria.City), slog.String("error", err.Error()))

		return nil, ErrAccommodationRetrieval
	}

	s.cache.Set(key, hotels)

	return hotels, nil
}

func (s *HotelService) cacheKey(criteria dto.HotelSearchCriteria) string {
	return fmt.Sprintf("hotel:cache:%s:%s:%s:%d",
		strings.ToLower(criteria.City), criteria.CheckIn, criteria.CheckOut, criteria.Guests)
}
