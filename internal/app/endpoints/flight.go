package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
)

var ErrInvalidRequestType = errors.New("invalid type")

type FlightService interface {
	GetBoard(ctx context.Context, req dto.BoardRequest) (dto.BoardResponse, error)
	LookupFlight(ctx context.Context, req dto.LookupRequest) (dto.LookupResponse, error)
}

type FlightEndpoint struct {
	GetBoard     endpoint.Endpoint
	LookupFlight endpoint.Endpoint
}

func MakeFlightEndpoint(service FlightService) FlightEndpoint {
	return FlightEndpoint{
		GetBoard:     makeGetBoardEndpoint(service),
		LookupFlight: makeLookupFlightEndpoint(service),
	}
}

func makeGetBoardEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.BoardRequest)
		if !ok || request == nil {
			return nil, ErrInvalidRequestType
		}

		board, err := service.GetBoard(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return board, nil
	}
}

func makeLookupFlightEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.LookupRequest)
		if !ok || request == nil {
			return nil, ErrInvalidRequestType
		}

		lookup, err := service.LookupFlight(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return lookup, nil
	}
}
