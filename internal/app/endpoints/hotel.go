package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"

	"travel-explorer-service/internal/app/dto"
)

type HotelService interface {
	SearchHotels(ctx context.Context, criteria dto.HotelSearchCriteria) ([]dto.HotelRecord, error)
}

type HotelEndpoint struct {
	SearchHotels endpoint.Endpoint
}

func MakeHotelEndpoint(service HotelService) HotelEndpoint {
	return HotelEndpoint{
		SearchHotels: makeSearchHotelsEndpoint(service),
	}
}

func makeSearchHotelsEndpoint(service HotelService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		criteria, ok := req.(*dto.HotelSearchCriteria)
		if !ok || criteria == nil {
			return nil, errors.New("invalid type")
		}

		hotels, err := service.SearchHotels(ctx, *criteria)
		if err != nil {
			return nil, fmt.Errorf("hotel service: %w", err)
		}

		return dto.HotelSearchResponse{Hotels: hotels}, nil
	}
}
