package aviationstack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/exception"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flightprovider"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flightprovider/providerutils"
)

const (
	ProviderName   = "aviationstack"
	DefaultBaseURL = "https://api.aviationstack.com/v1/flights"

	defaultListLimit   = 50
	defaultLookupLimit = 5
)

type Provider struct {
	Name         string
	BaseURL      string
	APIKey       string
	Timeout      time.Duration
	Limiter      flightprovider.RateLimiter
	RateLimitRPS int
	ListLimit    int
	LookupLimit  int
	client       *http.Client
}

func NewProvider(config flightprovider.FlightProviderConfig) *Provider {
	p := &Provider{
		Name:         ProviderName,
		BaseURL:      config.BaseURL,
		APIKey:       config.APIKey,
		Timeout:      config.Timeout,
		Limiter:      config.Limiter,
		RateLimitRPS: config.RateLimitRPS,
		ListLimit:    config.ListLimit,
		LookupLimit:  config.LookupLimit,
		client:       config.HTTPClient,
	}

	if p.BaseURL == "" {
		p.BaseURL = DefaultBaseURL
	}

	if p.ListLimit <= 0 {
		p.ListLimit = defaultListLimit
	}

	if p.LookupLimit <= 0 {
		p.LookupLimit = defaultLookupLimit
	}

	if p.client == nil {
		p.client = &http.Client{}
	}

	return p
}

// ListFlights returns the departures or arrivals board of an airport.
func (p *Provider) ListFlights(ctx context.Context, airport string, direction dto.Direction) ([]dto.RawFlight, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(p.ListLimit))

	if direction == dto.DirectionArrival {
		params.Set("arr_iata", strings.ToUpper(airport))
	} else {
		params.Set("dep_iata", strings.ToUpper(airport))
	}

	return p.fetch(ctx, params)
}

// LookupFlight returns every record of a flight code.
func (p *Provider) LookupFlight(ctx context.Context, code string) ([]dto.RawFlight, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(p.LookupLimit))
	params.Set("flight_iata", strings.ToUpper(strings.TrimSpace(code)))

	return p.fetch(ctx, params)
}

func (p *Provider) fetch(ctx context.Context, params url.Values) ([]dto.RawFlight, error) {
	if p.APIKey == "" {
		return nil, providerutils.ErrMissingAPIKey
	}

	if err := providerutils.AllowRequest(ctx, p.Limiter, p.Name, p.RateLimitRPS); err != nil {
		return nil, err
	}

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	params.Set("access_key", p.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build aviationstack request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		cause := errors.New(redactKey(err, p.APIKey))
		slog.WarnContext(ctx, "aviationstack request failed", slog.Any("error", cause))

		return nil, exception.UpstreamError("Failed to fetch flight data", cause)
	}
	defer resp.Body.Close()

	var body FlightsResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode >= http.StatusBadRequest {
		msg := "AviationStack request failed"
		if body.Error != nil && body.Error.Message != "" {
			msg = body.Error.Message
		}

		slog.WarnContext(ctx, "aviationstack returned error status",
			slog.Int("status", resp.StatusCode), slog.String("message", msg))

		return nil, exception.UpstreamError(msg, nil)
	}

	if decodeErr != nil {
		return nil, exception.UpstreamError("Failed to fetch flight data", decodeErr)
	}

	if body.Error != nil {
		msg := body.Error.Message
		if msg == "" {
			msg = "API error"
		}

		return nil, exception.UpstreamError(msg, nil)
	}

	if body.Data == nil {
		body.Data = []dto.RawFlight{}
	}

	return body.Data, nil
}

// redactKey keeps the access key out of logged transport errors, which quote the URL.
func redactKey(err error, key string) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return strings.ReplaceAll(urlErr.Error(), key, "***")
	}

	return err.Error()
}
