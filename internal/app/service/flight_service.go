package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/airport"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flightprovider"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flightprovider/providerutils"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flighttime"
	"github.com/jonboulle/clockwork"
)

type FlightCacher interface {
	BoardCacheKey(airport string, direction dto.Direction) string
	LookupCacheKey(code string) string
	LockKey(cacheKey string) string
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	GetFlights(ctx context.Context, key string) ([]dto.RawFlight, error)
	GetMetadata(ctx context.Context, key string) (dto.CacheMetadata, error)
	SetFlights(ctx context.Context,
		key string,
		flights []dto.RawFlight,
		metadata dto.CacheMetadata,
		expiration time.Duration,
	) error
}

type AirportDirectory interface {
	Lookup(code string) (airport.Airport, bool)
	Search(query string, limit int) []airport.Airport
}

type FlightService struct {
	Provider              flightprovider.FlightProvider
	Cache                 FlightCacher
	Airports              AirportDirectory
	Clock                 clockwork.Clock
	BoardCacheExpiration  time.Duration
	LookupCacheExpiration time.Duration
	LockTimeout           time.Duration
}

func NewFlightService(provider flightprovider.FlightProvider,
	cache FlightCacher, airports AirportDirectory, clock clockwork.Clock,
	boardCacheExpiration, lookupCacheExpiration, lockTimeout time.Duration,
) *FlightService {
	return &FlightService{
		Provider:              provider,
		Cache:                 cache,
		Airports:              airports,
		Clock:                 clock,
		BoardCacheExpiration:  boardCacheExpiration,
		LookupCacheExpiration: lookupCacheExpiration,
		LockTimeout:           lockTimeout,
	}
}

// cachedResult is a provider result together with where it came from.
type cachedResult struct {
	Flights  []dto.RawFlight
	Metadata dto.CacheMetadata
	CacheHit bool
}

// GetBoard returns one direction of an airport board, filtered and sorted in the
// airport's local day.
// GetBoard godoc
// @Summary      Airport flight board
// @Tags         Flights
// @Description  Departures or arrivals of an airport, filtered by time window, airline, place and status
// @Param        request  body      dto.BoardRequest  true  "Board request"
// @Success      200      {object}  dto.BoardResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/board [post]
func (s *FlightService) GetBoard(ctx context.Context, req dto.BoardRequest) (dto.BoardResponse, error) {
	startTime := s.Clock.Now()

	result, err := s.listFlights(ctx, req.Airport, req.Direction)
	if err != nil {
		return dto.BoardResponse{}, fmt.Errorf("failed to list flights: %w", err)
	}

	flights := flight.ProjectAll(result.Flights, req.Direction)
	timezone, airportName := s.airportTimezone(req.Airport, req.Direction, result.Flights)

	view := flight.ApplyView(ctx, flights, req.Direction, req.FilterCriteria, timezone, startTime)
	flight.Localize(view.Flights)

	return dto.BoardResponse{
		Airport:     req.Airport,
		AirportName: airportName,
		Direction:   req.Direction,
		Timezone:    timezone,
		Criteria:    req.FilterCriteria.WithDefaults(),
		Options:     view.Options,
		Flights:     view.Flights,
		Metadata: dto.Metadata{
			TotalResults:  len(view.Flights),
			TotalInWindow: view.InWindow,
			SearchTimeMs:  int(s.Clock.Since(startTime).Milliseconds()),
			CacheHit:      result.CacheHit,
			FetchedAt:     result.Metadata.FetchedAt,
			LastUpdated:   flighttime.FormatInTimezone(result.Metadata.FetchedAt, timezone, flighttime.StyleStamp),
		},
	}, nil
}

// ListFlights returns the raw board of an airport, from cache when fresh.
func (s *FlightService) ListFlights(ctx context.Context, airportCode string, direction dto.Direction) ([]dto.RawFlight, error) {
	result, err := s.listFlights(ctx, airportCode, direction)
	if err != nil {
		return nil, err
	}

	return result.Flights, nil
}

// LookupFlight godoc
// @Summary      Flight lookup
// @Tags         Flights
// @Param        request  body      dto.LookupRequest  true  "Lookup request"
// @Success      200      {object}  dto.LookupResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/lookup [post]
func (s *FlightService) LookupFlight(ctx context.Context, req dto.LookupRequest) (dto.LookupResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Flight))
	cacheKey := s.Cache.LookupCacheKey(code)

	result, err := s.cached(ctx, cacheKey, s.LookupCacheExpiration, func(ctx context.Context) ([]dto.RawFlight, error) {
		return s.Provider.LookupFlight(ctx, code)
	})
	if err != nil {
		return dto.LookupResponse{}, fmt.Errorf("failed to lookup flight: %w", err)
	}

	candidate, ok := providerutils.PickArrivalCandidate(result.Flights)
	if !ok {
		return dto.LookupResponse{}, ErrFlightNotFound
	}

	return dto.LookupResponse{
		Flight: candidate,
		All:    result.Flights,
	}, nil
}

func (s *FlightService) listFlights(ctx context.Context, airportCode string, direction dto.Direction) (cachedResult, error) {
	airportCode = strings.ToUpper(strings.TrimSpace(airportCode))
	cacheKey := s.Cache.BoardCacheKey(airportCode, direction)

	return s.cached(ctx, cacheKey, s.BoardCacheExpiration, func(ctx context.Context) ([]dto.RawFlight, error) {
		return s.Provider.ListFlights(ctx, airportCode, direction)
	})
}

// cached serves key from the cache or fills it from fetch. Only the caller holding the
// fill lock writes the result back; concurrent misses fetch on their own and skip the
// write. Cache failures degrade to a direct fetch.
func (s *FlightService) cached(ctx context.Context,
	cacheKey string,
	expiration time.Duration,
	fetch func(ctx context.Context) ([]dto.RawFlight, error),
) (cachedResult, error) {
	flights, err := s.Cache.GetFlights(ctx, cacheKey)
	if err == nil {
		metadata, err := s.Cache.GetMetadata(ctx, cacheKey)
		if err != nil {
			slog.WarnContext(ctx, "failed to get metadata from cache", slog.String("error", err.Error()))
		}

		return cachedResult{Flights: flights, Metadata: metadata, CacheHit: true}, nil
	}

	slog.WarnContext(ctx, "failed to get flights from cache",
		slog.String("key", cacheKey), slog.String("error", err.Error()))

	flights, err = fetch(ctx)
	if err != nil {
		return cachedResult{}, err
	}

	metadata := dto.CacheMetadata{
		FetchedAt: s.Clock.Now().UTC(),
		Count:     len(flights),
	}

	lockKey := s.Cache.LockKey(cacheKey)

	acquired, err := s.Cache.AcquireLock(ctx, lockKey, s.LockTimeout)
	if err != nil {
		slog.WarnContext(ctx, "failed to acquire cache lock", slog.String("error", err.Error()))

		return cachedResult{Flights: flights, Metadata: metadata}, nil
	}

	if acquired {
		defer func() {
			if err := s.Cache.ReleaseLock(ctx, lockKey); err != nil {
				slog.WarnContext(ctx, "failed to release cache lock", slog.String("error", err.Error()))
			}
		}()

		if err := s.Cache.SetFlights(ctx, cacheKey, flights, metadata, expiration); err != nil {
			slog.WarnContext(ctx, "failed to set flights to cache", slog.String("error", err.Error()))
		}
	}

	return cachedResult{Flights: flights, Metadata: metadata}, nil
}

// airportTimezone resolves the timezone defining the board's local day: the airport
// directory first, then the board side of the first record, then UTC.
func (s *FlightService) airportTimezone(code string, direction dto.Direction, flights []dto.RawFlight) (string, string) {
	if s.Airports != nil {
		if ap, ok := s.Airports.Lookup(code); ok && ap.Timezone != "" {
			return ap.Timezone, ap.Name
		}
	}

	for _, raw := range flights {
		side := raw.Departure
		if direction == dto.DirectionArrival {
			side = raw.Arrival
		}

		if side.Timezone != "" {
			return side.Timezone, side.Airport
		}
	}

	return flight.DefaultTimezone, ""
}
