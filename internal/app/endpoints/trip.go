package endpoints

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-kit/kit/endpoint"

	"travel-explorer-service/internal/app/dto"
	"travel-explorer-service/internal/pkg/exception"
	"travel-explorer-service/internal/pkg/logger"
)

type TripService interface {
	Overview(ctx context.Context, sessionID string) (dto.TripOverview, error)
	SaveFlight(ctx context.Context, sessionID string, flight dto.FlightRecord) error
	SaveHotel(ctx context.Context, sessionID string, hotel dto.HotelRecord) error
	Remove(ctx context.Context, sessionID string) error
}

type TripEndpoint struct {
	Overview   endpoint.Endpoint
	SaveFlight endpoint.Endpoint
	SaveHotel  endpoint.Endpoint
	Remove     endpoint.Endpoint
}

func MakeTripEndpoint(service TripService) TripEndpoint {
	return TripEndpoint{
		Overview:   makeTripOverviewEndpoint(service),
		SaveFlight: makeSaveTripFlightEndpoint(service),
		SaveHotel:  makeSaveTripHotelEndpoint(service),
		Remove:     makeRemoveTripEndpoint(service),
	}
}

var errMissingSession = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Message:    "missing session",
}

func sessionFromContext(ctx context.Context) (string, error) {
	sessionID := logger.SessionIDFromContext(ctx)
	if sessionID == "" {
		return "", errMissingSession
	}

	return sessionID, nil
}

func makeTripOverviewEndpoint(service TripService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		sessionID, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		overview, err := service.Overview(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("trip service: %w", err)
		}

		return overview, nil
	}
}

func makeSaveTripFlightEndpoint(service TripService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SaveTripFlightRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		sessionID, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		if err := service.SaveFlight(ctx, sessionID, request.Flight); err != nil {
			return nil, fmt.Errorf("trip service: %w", err)
		}

		return dto.Response{Message: "flight saved to trip"}, nil
	}
}

func makeSaveTripHotelEndpoint(service TripService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SaveTripHotelRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		sessionID, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		if err := service.SaveHotel(ctx, sessionID, request.Hotel); err != nil {
			return nil, fmt.Errorf("trip service: %w", err)
		}

		return dto.Response{Message: "hotel saved to trip"}, nil
	}
}

func makeRemoveTripEndpoint(service TripService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		sessionID, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		if err := service.Remove(ctx, sessionID); err != nil {
			return nil, fmt.Errorf("trip service: %w", err)
		}

		return dto.Response{Message: "trip removed"}, nil
	}
}
