package mockfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flightprovider"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flightprovider/aviationstack"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flightprovider/providerutils"
)

const ProviderName = "mockfile"

// Provider serves flights from a JSON file shaped like an AviationStack /v1/flights
// response. The file is read on every call so it can be edited while the service runs.
type Provider struct {
	Name         string
	FilePath     string
	Limiter      flightprovider.RateLimiter
	RateLimitRPS int
	ListLimit    int
	LookupLimit  int
}

func NewProvider(config flightprovider.FlightProviderConfig) *Provider {
	return &Provider{
		Name:         ProviderName,
		FilePath:     config.MockFile,
		Limiter:      config.Limiter,
		RateLimitRPS: config.RateLimitRPS,
		ListLimit:    config.ListLimit,
		LookupLimit:  config.LookupLimit,
	}
}

func (p *Provider) ListFlights(ctx context.Context, airport string, direction dto.Direction) ([]dto.RawFlight, error) {
	flights, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	return providerutils.Limit(providerutils.FilterByAirport(flights, airport, direction), p.ListLimit), nil
}

func (p *Provider) LookupFlight(ctx context.Context, code string) ([]dto.RawFlight, error) {
	flights, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	return providerutils.Limit(providerutils.FilterByFlightCode(flights, strings.TrimSpace(code)), p.LookupLimit), nil
}

func (p *Provider) load(ctx context.Context) ([]dto.RawFlight, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled or timeout: %w", err)
	}

	if err := providerutils.AllowRequest(ctx, p.Limiter, p.Name, p.RateLimitRPS); err != nil {
		return nil, err
	}

	flightData, err := os.ReadFile(p.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read mock file: %w", err)
	}

	var response aviationstack.FlightsResponse
	if err := json.Unmarshal(flightData, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mock file: %w", err)
	}

	return response.Data, nil
}
