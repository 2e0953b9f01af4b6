package service

import (
	"net/http"

	"travel-explorer-service/internal/pkg/exception"
)

// ErrAccommodationRetrieval is the only error the hotel lookup surfaces.
// Hotels have no live upstream to fall back from, so failures are reported
// instead of being masked with synthetic data.
var ErrAccommodationRetrieval = exception.ApplicationError{
	Message:    "failed to retrieve accommodation information",
	StatusCode: http.StatusInternalServerError,
}
