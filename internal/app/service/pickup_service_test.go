//go:build unit

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/exception"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/mapsprovider"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubFlightSource struct {
	lookup      dto.LookupResponse
	lookupErr   error
	arrivals    []dto.RawFlight
	arrivalsErr error
}

func (s stubFlightSource) LookupFlight(_ context.Context, _ dto.LookupRequest) (dto.LookupResponse, error) {
	return s.lookup, s.lookupErr
}

func (s stubFlightSource) ListFlights(_ context.Context, _ string, _ dto.Direction) ([]dto.RawFlight, error) {
	return s.arrivals, s.arrivalsErr
}

// busyArrivals puts three other flights within 30 minutes of AA1004 and one outside.
func busyArrivals() []dto.RawFlight {
	return []dto.RawFlight{
		arrivalRaw("AA1004", "American Airlines", "JFK", "2026-02-24T21:40:00+00:00", dto.StatusScheduled),
		arrivalRaw("UA0001", "United Airlines", "EWR", "2026-02-24T21:10:00+00:00", dto.StatusScheduled),
		arrivalRaw("UA0002", "United Airlines", "ORD", "2026-02-24T21:55:00+00:00", dto.StatusScheduled),
		arrivalRaw("DL0003", "Delta Air Lines", "ATL", "2026-02-24T22:10:00+00:00", dto.StatusScheduled),
		arrivalRaw("DL0004", "Delta Air Lines", "ATL", "2026-02-24T22:11:00+00:00", dto.StatusScheduled),
	}
}

func TestPickupService_Estimate(t *testing.T) {
	passenger := arrivalRaw("AA1004", "American Airlines", "JFK", "2026-02-24T21:40:00+00:00", dto.StatusScheduled)

	type want struct {
		baggage       int
		others        int
		leaveByLocal  string
		countdown     int
		driveMinutes  *int
		arrivalsError string
		driveError    string
	}

	estimateRequest := func(
		source stubFlightSource,
		address string,
		setupDrive func(m *mapsprovider.MockDriveTimeProvider),
		w want,
	) func(t *testing.T) {
		return func(t *testing.T) {
			drive := mapsprovider.NewMockDriveTimeProvider(t)
			setupDrive(drive)

			s := NewPickupService(source, drive, mapsprovider.NewMockAddressAutocompleteProvider(t),
				clockwork.NewFakeClockAt(serviceNow), 30*time.Minute)

			got, err := s.Estimate(context.Background(), dto.PickupEstimateRequest{Flight: "AA1004", Address: address})
			require.NoError(t, err)

			assert.Equal(t, "San Francisco International", got.ArrivalAirport)
			assert.Equal(t, "America/Los_Angeles", got.Timezone)
			assert.Equal(t, "Feb 24, 2026, 1:40 PM", got.LandingLocal)
			assert.Equal(t, "/pickup?flight=AA1004", got.SharePath)
			assert.Equal(t, w.baggage, got.BaggageWaitMinutes)
			assert.Equal(t, w.others, got.OtherFlights)
			assert.Equal(t, w.leaveByLocal, got.LeaveByLocal)
			assert.Equal(t, w.countdown, got.CountdownSeconds)
			assert.Equal(t, w.driveMinutes, got.DriveMinutes)
			assert.Equal(t, w.arrivalsError, got.ArrivalsError)
			assert.Equal(t, w.driveError, got.DriveError)
		}
	}

	fortyFive := 45
	lookup := dto.LookupResponse{Flight: passenger, All: []dto.RawFlight{passenger}}
	driveOK := func(m *mapsprovider.MockDriveTimeProvider) {
		m.On("DriveTime", mock.Anything, "1 Market St", "San Francisco International Airport").Return(2700, nil).Once()
	}

	t.Run("full_estimate", estimateRequest(
		stubFlightSource{lookup: lookup, arrivals: busyArrivals()},
		"1 Market St", driveOK,
		want{baggage: 25, others: 3, leaveByLocal: "1:20 PM", countdown: 12000, driveMinutes: &fortyFive},
	))

	t.Run("arrivals_failure_uses_base_wait", estimateRequest(
		stubFlightSource{lookup: lookup, arrivalsErr: exception.UpstreamError("Failed to fetch flight data", nil)},
		"1 Market St", driveOK,
		want{
			baggage: 20, others: 0, leaveByLocal: "1:15 PM", countdown: 11700, driveMinutes: &fortyFive,
			arrivalsError: "Failed to fetch flight data",
		},
	))

	t.Run("drive_failure_has_no_leave_by", estimateRequest(
		stubFlightSource{lookup: lookup, arrivals: busyArrivals()},
		"nowhere",
		func(m *mapsprovider.MockDriveTimeProvider) {
			m.On("DriveTime", mock.Anything, "nowhere", "San Francisco International Airport").
				Return(0, mapsprovider.ErrNoRoute).Once()
		},
		want{baggage: 25, others: 3, driveError: "No route found or invalid addresses."},
	))

	t.Run("no_address_skips_drive", estimateRequest(
		stubFlightSource{lookup: lookup, arrivals: busyArrivals()},
		"",
		func(*mapsprovider.MockDriveTimeProvider) {},
		want{baggage: 25, others: 3},
	))
}

func TestPickupService_Estimate_LookupFailure(t *testing.T) {
	s := NewPickupService(stubFlightSource{lookupErr: ErrFlightNotFound},
		mapsprovider.NewMockDriveTimeProvider(t), mapsprovider.NewMockAddressAutocompleteProvider(t),
		clockwork.NewFakeClockAt(serviceNow), 0)

	_, err := s.Estimate(context.Background(), dto.PickupEstimateRequest{Flight: "ZZ999"})
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestPickupService_Estimate_DriveFormatted(t *testing.T) {
	passenger := arrivalRaw("AA1004", "American Airlines", "JFK", "2026-02-24T21:40:00+00:00", dto.StatusScheduled)
	drive := mapsprovider.NewMockDriveTimeProvider(t)
	drive.On("DriveTime", mock.Anything, "Sacramento", "San Francisco International Airport").Return(7481, nil).Once()

	s := NewPickupService(stubFlightSource{lookup: dto.LookupResponse{Flight: passenger}},
		drive, mapsprovider.NewMockAddressAutocompleteProvider(t), clockwork.NewFakeClockAt(serviceNow), 0)

	got, err := s.Estimate(context.Background(), dto.PickupEstimateRequest{Flight: "AA1004", Address: "Sacramento"})
	require.NoError(t, err)

	require.NotNil(t, got.DriveMinutes)
	assert.Equal(t, 125, *got.DriveMinutes)
	assert.Equal(t, "2h 5m", got.DriveFormatted)
	assert.Equal(t, "11:55 AM", got.LeaveByLocal)
}

func TestPickupService_DriveTime(t *testing.T) {
	drive := mapsprovider.NewMockDriveTimeProvider(t)
	drive.On("DriveTime", mock.Anything, "a", "b").Return(600, nil).Once()
	drive.On("DriveTime", mock.Anything, "c", "d").Return(0, mapsprovider.ErrMissingAPIKey).Once()

	s := NewPickupService(stubFlightSource{}, drive, mapsprovider.NewMockAddressAutocompleteProvider(t),
		clockwork.NewRealClock(), 0)

	got, err := s.DriveTime(context.Background(), dto.DriveTimeRequest{Origin: "a", Destination: "b"})
	require.NoError(t, err)
	assert.Equal(t, 600, got.DurationSeconds)

	_, err = s.DriveTime(context.Background(), dto.DriveTimeRequest{Origin: "c", Destination: "d"})
	assert.ErrorIs(t, err, mapsprovider.ErrMissingAPIKey)
}

func TestPickupService_SuggestAddresses(t *testing.T) {
	addresses := mapsprovider.NewMockAddressAutocompleteProvider(t)
	addresses.On("Suggest", mock.Anything, "1 Mar").Return(nil, nil).Once()
	addresses.On("Suggest", mock.Anything, "boom").Return(nil, errors.New("quota")).Once()

	s := NewPickupService(stubFlightSource{}, mapsprovider.NewMockDriveTimeProvider(t), addresses,
		clockwork.NewRealClock(), 0)

	got, err := s.SuggestAddresses(context.Background(), dto.AddressSuggestRequest{Query: "1 Mar"})
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Suggestions)

	_, err = s.SuggestAddresses(context.Background(), dto.AddressSuggestRequest{Query: "boom"})
	assert.ErrorContains(t, err, "quota")
}
