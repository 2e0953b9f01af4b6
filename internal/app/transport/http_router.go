package transport

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"travel-explorer-service/internal/app/config"
	"travel-explorer-service/internal/app/dto"
	"travel-explorer-service/internal/app/endpoints"
	httptransport "travel-explorer-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.SessionID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Get("/flights/search", httptransport.MakeHandlerFunc(
			endpts.Flight.SearchFlights,
			decodeFlightSearchRequest,
			httptransport.ResponseWithBody,
		))

		router.Get("/hotels/search", httptransport.MakeHandlerFunc(
			endpts.Hotel.SearchHotels,
			decodeHotelSearchRequest,
			httptransport.ResponseWithBody,
		))

		router.Route("/trip", func(router chi.Router) {
			router.Get("/", httptransport.MakeHandlerFunc(
				endpts.Trip.Overview,
				httptransport.DecodeEmptyRequest,
				httptransport.ResponseWithBody,
			))

			router.Post("/flight", httptransport.MakeHandlerFunc(
				endpts.Trip.SaveFlight,
				httptransport.DecodeRequest[dto.SaveTripFlightRequest],
				httptransport.CreatedResponse,
			))

			router.Post("/hotel", httptransport.MakeHandlerFunc(
				endpts.Trip.SaveHotel,
				httptransport.DecodeRequest[dto.SaveTripHotelRequest],
				httptransport.CreatedResponse,
			))

			router.Delete("/", httptransport.MakeHandlerFunc(
				endpts.Trip.Remove,
				httptransport.DecodeEmptyRequest,
				httptransport.NoContentResponse,
			))
		})
	})

	return router
}

func decodeFlightSearchRequest(_ context.Context, req *http.Request) (interface{}, error) {
	query := req.URL.Query()

	criteria := dto.FlightSearchCriteria{
		Origin:      query.Get("origin"),
		Destination: query.Get("destination"),
		Date:        query.Get("date"),
	}

	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	return &criteria, nil
}

func decodeHotelSearchRequest(_ context.Context, req *http.Request) (interface{}, error) {
	query := req.URL.Query()

	guests, _ := strconv.Atoi(query.Get("guests"))

	criteria := dto.HotelSearchCriteria{
		City:     query.Get("city"),
		CheckIn:  query.Get("check_in"),
		CheckOut: query.Get("check_out"),
		Guests:   guests,
	}

	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	return &criteria, nil
}
