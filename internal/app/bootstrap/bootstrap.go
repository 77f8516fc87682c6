// Package bootstrap wires configuration into providers, services and endpoints. It is
// shared by the HTTP server and the pickupctl CLI.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/flight-pickup-service/internal/app/config"
	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/ijalalfrz/flight-pickup-service/internal/app/endpoints"
	"github.com/ijalalfrz/flight-pickup-service/internal/app/service"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/airport"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/exception"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flight"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flightprovider"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flightprovider/aviationstack"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flightprovider/mockfile"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/mapsprovider"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/mapsprovider/googlemaps"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
)

// App holds the wired services.
type App struct {
	Redis          *redis.Client
	FlightService  *service.FlightService
	PickupService  *service.PickupService
	AirportService *service.AirportService
	Maps           *googlemaps.Provider
	Clock          clockwork.Clock
}

// NewApp builds every service from cfg. Missing API keys are not fatal: the affected
// provider fails each call with a configuration error.
func NewApp(ctx context.Context, cfg *config.Config, clock clockwork.Clock) (*App, error) {
	// init validator
	if err := dto.InitValidator(); err != nil {
		return nil, fmt.Errorf("failed to init validator: %w", err)
	}

	redisClient := NewRedisClient(cfg)

	directory, err := NewAirportDirectory(cfg)
	if err != nil {
		return nil, err
	}

	provider, err := NewFlightProvider(cfg, redis_rate.NewLimiter(redisClient))
	if err != nil {
		return nil, err
	}

	maps, err := googlemaps.NewProvider(mapsprovider.MapsProviderConfig{
		APIKey:     cfg.Maps.APIKey,
		BaseURL:    cfg.Maps.BaseURL,
		Timeout:    cfg.Maps.Timeout,
		HTTPClient: &http.Client{},
	}, clock)
	if err != nil {
		return nil, err
	}

	if cfg.Flights.AviationStack.APIKey == "" && cfg.Flights.Provider == aviationstack.ProviderName {
		slog.WarnContext(ctx, "AVIATIONSTACK_API_KEY is not configured, flight requests will fail")
	}

	if cfg.Maps.APIKey == "" {
		slog.WarnContext(ctx, "GOOGLE_MAPS_API_KEY is not configured, drive time requests will fail")
	}

	flightService := service.NewFlightService(provider, flight.NewFlightCache(redisClient), directory, clock,
		cfg.Flights.BoardCacheExpiration, cfg.Flights.LookupCacheExpiration, cfg.Flights.LockTimeout)

	return &App{
		Redis:          redisClient,
		FlightService:  flightService,
		PickupService:  service.NewPickupService(flightService, maps, maps, clock, cfg.Pickup.LandingWindow),
		AirportService: service.NewAirportService(directory),
		Maps:           maps,
		Clock:          clock,
	}, nil
}

// Endpoints exposes the services as go-kit endpoints.
func (a *App) Endpoints() endpoints.Endpoints {
	return endpoints.Endpoints{
		FlightEndpoint:  endpoints.MakeFlightEndpoint(a.FlightService),
		PickupEndpoint:  endpoints.MakePickupEndpoint(a.PickupService),
		AirportEndpoint: endpoints.MakeAirportEndpoint(a.AirportService),
	}
}

func (a *App) Close() error {
	return a.Redis.Close()
}

func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.Timeout,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})
}

// NewAirportDirectory returns the embedded airport table, or the one in AIRPORTS_FILE.
func NewAirportDirectory(cfg *config.Config) (*airport.Directory, error) {
	if cfg.Airports.File != "" {
		directory, err := airport.LoadFile(cfg.Airports.File)
		if err != nil {
			return nil, fmt.Errorf("failed to load airports file: %w", err)
		}

		return directory, nil
	}

	directory, err := airport.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load airport seed list: %w", err)
	}

	return directory, nil
}

// NewFlightProvider registers the known flight providers and returns the one selected
// by FLIGHT_PROVIDER. A nil limiter disables rate limiting.
func NewFlightProvider(cfg *config.Config, limiter flightprovider.RateLimiter) (flightprovider.FlightProvider, error) {
	providerCfg := flightprovider.FlightProviderConfig{
		BaseURL:      cfg.Flights.AviationStack.BaseURL,
		APIKey:       cfg.Flights.AviationStack.APIKey,
		Timeout:      cfg.Flights.AviationStack.Timeout,
		RateLimitRPS: cfg.Flights.AviationStack.RateLimitRPS,
		ListLimit:    cfg.Flights.AviationStack.ListLimit,
		LookupLimit:  cfg.Flights.AviationStack.LookupLimit,
		MockFile:     cfg.Flights.MockFile,
		Limiter:      limiter,
	}

	factory := flightprovider.NewFlightProviderFactory()
	factory.AddProvider(aviationstack.ProviderName, aviationstack.NewProvider(providerCfg))
	factory.AddProvider(mockfile.ProviderName, mockfile.NewProvider(providerCfg))

	provider := factory.GetProvider(cfg.Flights.Provider)
	if provider == nil {
		return nil, exception.ConfigurationError(
			fmt.Sprintf("FLIGHT_PROVIDER %q is not supported", cfg.Flights.Provider))
	}

	return provider, nil
}
