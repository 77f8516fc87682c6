package flightprovider

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
)

// config for flight provider
type FlightProviderConfig struct {
	BaseURL      string
	APIKey       string
	Timeout      time.Duration
	RateLimitRPS int
	ListLimit    int
	LookupLimit  int
	// MockFile is the JSON document served by the mock file provider.
	MockFile   string
	Limiter    RateLimiter
	HTTPClient *http.Client
}

// RateLimiter is satisfied by *redis_rate.Limiter.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// FlightProvider returns raw flight records. ListFlights returns the board of an airport
// for one direction; LookupFlight returns every record matching a flight code.
type FlightProvider interface {
	ListFlights(ctx context.Context, airport string, direction dto.Direction) ([]dto.RawFlight, error)
	LookupFlight(ctx context.Context, code string) ([]dto.RawFlight, error)
}

type FlightProviderFactory struct {
	Provider map[string]FlightProvider
}

func NewFlightProviderFactory() *FlightProviderFactory {
	return &FlightProviderFactory{
		Provider: make(map[string]FlightProvider),
	}
}

func (f *FlightProviderFactory) AddProvider(name string, provider FlightProvider) {
	f.Provider[name] = provider
}

// GetProvider returns the provider registered under name, or nil.
func (f *FlightProviderFactory) GetProvider(name string) FlightProvider {
	return f.Provider[name]
}
