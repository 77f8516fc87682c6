// Package mapsprovider holds the drive-time and address-autocomplete collaborators.
package mapsprovider

import (
	"context"
	"net/http"
	"time"
)

type MapsProviderConfig struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// DriveTimeProvider returns the drive duration in seconds between two free-text
// addresses under current traffic.
type DriveTimeProvider interface {
	DriveTime(ctx context.Context, origin, destination string) (int, error)
}

// AddressAutocompleteProvider returns address suggestions for a partial address.
type AddressAutocompleteProvider interface {
	Suggest(ctx context.Context, query string) ([]string, error)
}
