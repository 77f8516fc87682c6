package endpoints

import (
	"context"
	"testing"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/exception"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFlightService struct{}

func (stubFlightService) GetBoard(_ context.Context, req dto.BoardRequest) (dto.BoardResponse, error) {
	return dto.BoardResponse{Airport: req.Airport, Direction: req.Direction}, nil
}

func (stubFlightService) LookupFlight(_ context.Context, _ dto.LookupRequest) (dto.LookupResponse, error) {
	return dto.LookupResponse{}, exception.NotFoundError("Flight not found or no arrival data.")
}

func TestFlightEndpoint(t *testing.T) {
	ep := MakeFlightEndpoint(stubFlightService{})

	got, err := ep.GetBoard(context.Background(), &dto.BoardRequest{Airport: "SFO", Direction: dto.DirectionArrival})
	require.NoError(t, err)
	assert.Equal(t, "SFO", got.(dto.BoardResponse).Airport)

	_, err = ep.GetBoard(context.Background(), dto.BoardRequest{})
	assert.ErrorIs(t, err, ErrInvalidRequestType)

	_, err = ep.LookupFlight(context.Background(), &dto.LookupRequest{Flight: "ZZ1"})
	assert.Equal(t, 404, exception.StatusCodeOf(err))
	assert.ErrorContains(t, err, "flight service")
}

func TestPickupAndAirportEndpoint_InvalidType(t *testing.T) {
	pickupEp := MakePickupEndpoint(nil)

	for _, ep := range []func(context.Context, interface{}) (interface{}, error){
		pickupEp.Estimate, pickupEp.DriveTime, pickupEp.SuggestAddresses,
		MakeAirportEndpoint(nil).SearchAirports,
	} {
		_, err := ep(context.Background(), "wrong")
		assert.ErrorIs(t, err, ErrInvalidRequestType)
	}
}
