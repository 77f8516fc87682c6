package http

import (
	"context"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/exception"
)

var ErrInvalidJSONBody = exception.ValidationError("Invalid JSON body.")

// binder is satisfied by pointer request DTOs implementing render.Binder.
type binder[T any] interface {
	*T
	render.Binder
}

// MakeHandlerFunc wraps a go-kit endpoint into a http.HandlerFunc that encodes every
// error through ErrorResponse.
func MakeHandlerFunc(
	ep endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(ep, dec, enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}

// DecodeRequest decodes a JSON body into T and runs its Bind hook.
func DecodeRequest[T any, PT binder[T]](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := render.DecodeJSON(r.Body, req); err != nil {
		return nil, ErrInvalidJSONBody
	}

	if err := req.Bind(r); err != nil {
		return nil, err
	}

	return req, nil
}

// DecodeQuery builds T from the request query string through its Bind hook.
func DecodeQuery[T any, PT binder[T]](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := req.Bind(r); err != nil {
		return nil, err
	}

	return req, nil
}
