package googlemaps

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/exception"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/mapsprovider"
	"github.com/jonboulle/clockwork"
	"googlemaps.github.io/maps"
)

const (
	ProviderName = "googlemaps"

	elementOK = "OK"
)

// Client is the subset of *maps.Client used by Provider.
type Client interface {
	DistanceMatrix(ctx context.Context, r *maps.DistanceMatrixRequest) (*maps.DistanceMatrixResponse, error)
	PlaceAutocomplete(ctx context.Context, r *maps.PlaceAutocompleteRequest) (maps.AutocompleteResponse, error)
}

type Provider struct {
	Name    string
	Timeout time.Duration
	client  Client
	clock   clockwork.Clock
}

// NewProvider builds a provider backed by the Google Maps web services. Without an
// API key every call fails with mapsprovider.ErrMissingAPIKey.
func NewProvider(config mapsprovider.MapsProviderConfig, clock clockwork.Clock) (*Provider, error) {
	p := &Provider{
		Name:    ProviderName,
		Timeout: config.Timeout,
		clock:   clock,
	}

	if config.APIKey == "" {
		return p, nil
	}

	opts := []maps.ClientOption{maps.WithAPIKey(config.APIKey)}
	if config.BaseURL != "" {
		opts = append(opts, maps.WithBaseURL(config.BaseURL))
	}

	if config.HTTPClient != nil {
		opts = append(opts, maps.WithHTTPClient(config.HTTPClient))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create google maps client: %w", err)
	}

	p.client = client

	return p, nil
}

// NewProviderWithClient wires an existing client, mostly for tests.
func NewProviderWithClient(client Client, clock clockwork.Clock) *Provider {
	return &Provider{
		Name:   ProviderName,
		client: client,
		clock:  clock,
	}
}

// DriveTime returns the driving duration in seconds from origin to destination,
// preferring the traffic-aware duration when Google returns one.
func (p *Provider) DriveTime(ctx context.Context, origin, destination string) (int, error) {
	if p.client == nil {
		return 0, mapsprovider.ErrMissingAPIKey
	}

	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)

	if origin == "" || destination == "" {
		return 0, exception.ValidationError("Body must include 'origin' and 'destination' strings.")
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	resp, err := p.client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:       []string{origin},
		Destinations:  []string{destination},
		Mode:          maps.TravelModeDriving,
		DepartureTime: strconv.FormatInt(p.clock.Now().Unix(), 10),
		TrafficModel:  maps.TrafficModelBestGuess,
	})
	if err != nil {
		slog.WarnContext(ctx, "distance matrix request failed", slog.Any("error", err))

		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return 0, exception.UpstreamError("Failed to get drive time", err)
		}

		return 0, exception.UpstreamError("Distance Matrix request failed", err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return 0, mapsprovider.ErrNoRoute
	}

	element := resp.Rows[0].Elements[0]
	if element == nil || element.Status != elementOK {
		return 0, mapsprovider.ErrNoRoute
	}

	duration := element.DurationInTraffic
	if duration <= 0 {
		duration = element.Duration
	}

	if duration <= 0 {
		return 0, mapsprovider.ErrNoDuration
	}

	return int(duration / time.Second), nil
}

// Suggest returns street-address predictions for a partial address.
func (p *Provider) Suggest(ctx context.Context, query string) ([]string, error) {
	if p.client == nil {
		return nil, mapsprovider.ErrMissingAPIKey
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	resp, err := p.client.PlaceAutocomplete(ctx, &maps.PlaceAutocompleteRequest{
		Input: query,
		Types: maps.AutocompletePlaceTypeAddress,
	})
	if err != nil {
		slog.WarnContext(ctx, "place autocomplete request failed", slog.Any("error", err))

		return nil, exception.UpstreamError("Failed to get address suggestions", err)
	}

	suggestions := make([]string, 0, len(resp.Predictions))
	for _, prediction := range resp.Predictions {
		if prediction.Description != "" {
			suggestions = append(suggestions, prediction.Description)
		}
	}

	return suggestions, nil
}

func (p *Provider) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.Timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, p.Timeout)
}
