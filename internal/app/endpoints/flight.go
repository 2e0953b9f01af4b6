package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"

	"travel-explorer-service/internal/app/dto"
)

type FlightService interface {
	SearchFlights(ctx context.Context, criteria dto.FlightSearchCriteria) ([]dto.FlightRecord, error)
}

type FlightEndpoint struct {
	SearchFlights endpoint.Endpoint
}

func MakeFlightEndpoint(service FlightService) FlightEndpoint {
	return FlightEndpoint{
		SearchFlights: makeSearchFlightsEndpoint(service),
	}
}

func makeSearchFlightsEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		criteria, ok := req.(*dto.FlightSearchCriteria)
		if !ok || criteria == nil {
			return nil, errors.New("invalid type")
		}

		flights, err := service.SearchFlights(ctx, *criteria)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return dto.FlightSearchResponse{Flights: flights}, nil
	}
}
