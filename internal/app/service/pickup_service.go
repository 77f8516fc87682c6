package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/exception"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flighttime"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/logger"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/mapsprovider"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/pickup"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/utils"
	"github.com/jonboulle/clockwork"
)

type FlightSource interface {
	LookupFlight(ctx context.Context, req dto.LookupRequest) (dto.LookupResponse, error)
	ListFlights(ctx context.Context, airport string, direction dto.Direction) ([]dto.RawFlight, error)
}

type PickupService struct {
	Flights       FlightSource
	DriveTimes    mapsprovider.DriveTimeProvider
	Addresses     mapsprovider.AddressAutocompleteProvider
	Clock         clockwork.Clock
	LandingWindow time.Duration
}

func NewPickupService(flights FlightSource,
	driveTimes mapsprovider.DriveTimeProvider,
	addresses mapsprovider.AddressAutocompleteProvider,
	clock clockwork.Clock, landingWindow time.Duration,
) *PickupService {
	if landingWindow <= 0 {
		landingWindow = pickup.DefaultLandingWindow
	}

	return &PickupService{
		Flights:       flights,
		DriveTimes:    driveTimes,
		Addresses:     addresses,
		Clock:         clock,
		LandingWindow: landingWindow,
	}
}

// Estimate computes when a driver must leave to pick up a passenger. The arrivals query
// and the drive-time query run concurrently and fail independently: without arrivals
// the base baggage wait applies, without a drive time no leave-by is returned.
// Estimate godoc
// @Summary      Pickup estimate
// @Tags         Pickup
// @Param        request  body      dto.PickupEstimateRequest  true  "Estimate request"
// @Success      200      {object}  dto.PickupEstimateResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/v1/pickup/estimate [post]
func (s *PickupService) Estimate(ctx context.Context, req dto.PickupEstimateRequest) (dto.PickupEstimateResponse, error) {
	ctx = logger.WithFlight(ctx, req.Flight)

	lookup, err := s.Flights.LookupFlight(ctx, dto.LookupRequest{Flight: req.Flight})
	if err != nil {
		return dto.PickupEstimateResponse{}, fmt.Errorf("failed to lookup flight: %w", err)
	}

	raw := lookup.Flight
	if raw.Arrival.IATA == "" && raw.Arrival.Airport == "" {
		return dto.PickupEstimateResponse{}, ErrNoArrivalAirport
	}

	passenger := flight.ProjectArrival(raw)

	var (
		wg          sync.WaitGroup
		arrivals    []dto.Flight
		arrivalsErr error
		driveMin    *int
		driveErr    error
	)

	if raw.Arrival.IATA != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()

			raws, err := s.Flights.ListFlights(ctx, raw.Arrival.IATA, dto.DirectionArrival)
			if err != nil {
				arrivalsErr = err
				return
			}

			arrivals = flight.ProjectAll(raws, dto.DirectionArrival)
		}()
	}

	if req.Address != "" && raw.Arrival.Airport != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()

			seconds, err := s.DriveTimes.DriveTime(ctx, req.Address, pickup.DriveDestination(raw.Arrival.Airport))
			if err != nil {
				driveErr = err
				return
			}

			minutes := pickup.DriveMinutes(seconds)
			driveMin = &minutes
		}()
	}

	wg.Wait()

	if arrivalsErr != nil {
		slog.WarnContext(ctx, "failed to get arrivals, using base baggage wait",
			slog.String("airport", raw.Arrival.IATA), slog.Any("error", arrivalsErr))
	}

	if driveErr != nil {
		slog.WarnContext(ctx, "failed to get drive time", slog.Any("error", driveErr))
	}

	estimate := pickup.NewEstimate(passenger, arrivals, driveMin, s.LandingWindow)

	return s.estimateResponse(raw, estimate, arrivalsErr, driveErr), nil
}

func (s *PickupService) estimateResponse(raw dto.RawFlight,
	estimate pickup.Estimate,
	arrivalsErr, driveErr error,
) dto.PickupEstimateResponse {
	timezone := estimate.Flight.Timezone

	flights := []dto.Flight{estimate.Flight}
	flight.Localize(flights)

	resp := dto.PickupEstimateResponse{
		Flight:             flights[0],
		ArrivalAirport:     raw.Arrival.Airport,
		Timezone:           timezone,
		LandingAt:          estimate.LandingAt,
		LandingLocal:       flighttime.FormatInTimezone(estimate.LandingAt, timezone, flighttime.StyleDateTime),
		OtherFlights:       estimate.OtherFlights,
		BaggageWaitMinutes: estimate.BaggageWaitMinutes,
		DriveMinutes:       estimate.DriveMinutes,
		LeaveBy:            estimate.LeaveBy,
		SharePath:          pickup.SharePath(estimate.Flight.FlightIata),
		ArrivalsError:      errorMessage(arrivalsErr),
		DriveError:         errorMessage(driveErr),
	}

	if estimate.DriveMinutes != nil {
		resp.DriveFormatted = utils.ConvertMinutesToDuration(int64(*estimate.DriveMinutes))
	}

	if estimate.LeaveBy != nil {
		resp.LeaveByLocal = flighttime.FormatInTimezone(*estimate.LeaveBy, timezone, flighttime.StyleTime)
		resp.CountdownSeconds = pickup.CountdownSeconds(s.Clock.Now(), *estimate.LeaveBy)
	}

	return resp
}

// DriveTime godoc
// @Summary      Drive time
// @Tags         Pickup
// @Param        request  body      dto.DriveTimeRequest  true  "Origin and destination"
// @Success      200      {object}  dto.DriveTimeResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/v1/drive-time [post]
func (s *PickupService) DriveTime(ctx context.Context, req dto.DriveTimeRequest) (dto.DriveTimeResponse, error) {
	seconds, err := s.DriveTimes.DriveTime(ctx, req.Origin, req.Destination)
	if err != nil {
		return dto.DriveTimeResponse{}, fmt.Errorf("failed to get drive time: %w", err)
	}

	return dto.DriveTimeResponse{DurationSeconds: seconds}, nil
}

// SuggestAddresses godoc
// @Summary      Address autocomplete
// @Tags         Pickup
// @Param        q    query     string  true  "Partial address, at least 3 characters"
// @Success      200  {object}  dto.AddressSuggestResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/v1/addresses [get]
func (s *PickupService) SuggestAddresses(ctx context.Context, req dto.AddressSuggestRequest) (dto.AddressSuggestResponse, error) {
	suggestions, err := s.Addresses.Suggest(ctx, req.Query)
	if err != nil {
		return dto.AddressSuggestResponse{}, fmt.Errorf("failed to suggest addresses: %w", err)
	}

	if suggestions == nil {
		suggestions = []string{}
	}

	return dto.AddressSuggestResponse{Suggestions: suggestions}, nil
}

// errorMessage is the user-facing text of err, empty for nil.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}

	var appErr exception.ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	return err.Error()
}
