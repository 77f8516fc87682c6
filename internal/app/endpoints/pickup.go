package endpoints

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
)

type PickupService interface {
	Estimate(ctx context.Context, req dto.PickupEstimateRequest) (dto.PickupEstimateResponse, error)
	DriveTime(ctx context.Context, req dto.DriveTimeRequest) (dto.DriveTimeResponse, error)
	SuggestAddresses(ctx context.Context, req dto.AddressSuggestRequest) (dto.AddressSuggestResponse, error)
}

type PickupEndpoint struct {
	Estimate         endpoint.Endpoint
	DriveTime        endpoint.Endpoint
	SuggestAddresses endpoint.Endpoint
}

func MakePickupEndpoint(service PickupService) PickupEndpoint {
	return PickupEndpoint{
		Estimate:         makeEstimateEndpoint(service),
		DriveTime:        makeDriveTimeEndpoint(service),
		SuggestAddresses: makeSuggestAddressesEndpoint(service),
	}
}

func makeEstimateEndpoint(service PickupService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.PickupEstimateRequest)
		if !ok || request == nil {
			return nil, ErrInvalidRequestType
		}

		estimate, err := service.Estimate(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("pickup service: %w", err)
		}

		return estimate, nil
	}
}

func makeDriveTimeEndpoint(service PickupService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.DriveTimeRequest)
		if !ok || request == nil {
			return nil, ErrInvalidRequestType
		}

		driveTime, err := service.DriveTime(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("pickup service: %w", err)
		}

		return driveTime, nil
	}
}

func makeSuggestAddressesEndpoint(service PickupService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.AddressSuggestRequest)
		if !ok || request == nil {
			return nil, ErrInvalidRequestType
		}

		suggestions, err := service.SuggestAddresses(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("pickup service: %w", err)
		}

		return suggestions, nil
	}
}
