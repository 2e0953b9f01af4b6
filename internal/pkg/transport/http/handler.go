package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
)

type DecodeRequestFunc func(ctx context.Context, req *http.Request) (interface{}, error)

type EncodeResponseFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// MakeHandlerFunc glues a go-kit endpoint to the router: decode the request,
// run the endpoint, encode the response, funnel every failure through
// ErrorResponse.
func MakeHandlerFunc(ep endpoint.Endpoint, dec DecodeRequestFunc, enc EncodeResponseFunc) http.HandlerFunc {
	return func(respWriter http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		request, err := dec(ctx, req)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		response, err := ep(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		if err := enc(ctx, respWriter, response); err != nil {
			ErrorResponse(ctx, err, respWriter)
		}
	}
}

// DecodeRequest decodes a JSON body into T and runs its Bind hook. *T must
// implement render.Binder.
func DecodeRequest[T any](_ context.Context, req *http.Request) (interface{}, error) {
	payload := new(T)

	binder, ok := any(payload).(render.Binder)
	if !ok {
		return nil, errors.New("request type does not implement render.Binder")
	}

	if err := render.Bind(req, binder); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}

	return payload, nil
}

// DecodeEmptyRequest is for endpoints that take no request payload.
func DecodeEmptyRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}
