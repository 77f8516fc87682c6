package providerutils

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flightprovider"
)

// FilterByAirport keeps the flights leaving (departure) or reaching (arrival) airport.
func FilterByAirport(flights []dto.RawFlight, airport string, direction dto.Direction) []dto.RawFlight {
	results := make([]dto.RawFlight, 0, len(flights))

	for _, flight := range flights {
		side := flight.Departure
		if direction == dto.DirectionArrival {
			side = flight.Arrival
		}

		if !strings.EqualFold(side.IATA, airport) {
			continue
		}

		results = append(results, flight)
	}

	return results
}

// FilterByFlightCode keeps the flights whose IATA flight code, or airline code plus
// number, equals code.
func FilterByFlightCode(flights []dto.RawFlight, code string) []dto.RawFlight {
	results := make([]dto.RawFlight, 0)

	for _, flight := range flights {
		if strings.EqualFold(flight.Flight.IATA, code) ||
			strings.EqualFold(flight.Airline.IATA+flight.Flight.Number, code) {
			results = append(results, flight)
		}
	}

	return results
}

// Limit truncates flights to n records. n <= 0 keeps everything.
func Limit(flights []dto.RawFlight, n int) []dto.RawFlight {
	if n <= 0 || len(flights) <= n {
		return flights
	}

	return flights[:n]
}

// PickArrivalCandidate chooses the record of a lookup: the first flight that is not
// cancelled and has a scheduled arrival, else the first flight.
func PickArrivalCandidate(flights []dto.RawFlight) (dto.RawFlight, bool) {
	for _, flight := range flights {
		if flight.FlightStatus != dto.StatusCancelled && flight.Arrival.Scheduled != "" {
			return flight, true
		}
	}

	if len(flights) == 0 {
		return dto.RawFlight{}, false
	}

	return flights[0], true
}

// AllowRequest consumes one request from the provider's per-second budget. A nil limiter
// or a non-positive rate disables limiting.
func AllowRequest(ctx context.Context, limiter flightprovider.RateLimiter, providerName string, rps int) error {
	if limiter == nil || rps <= 0 {
		return nil
	}

	res, err := limiter.Allow(ctx, fmt.Sprintf("limit:%s", providerName), redis_rate.PerSecond(rps))
	if err != nil {
		return fmt.Errorf("failed to rate limit: %w", err)
	}

	if res.Allowed == 0 {
		return ErrProviderRateLimitExceeded
	}

	return nil
}
