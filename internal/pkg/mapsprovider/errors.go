package mapsprovider

import (
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/exception"
)

var ErrMissingAPIKey = exception.ConfigurationError("GOOGLE_MAPS_API_KEY is not configured.")

var ErrNoRoute = exception.UpstreamError("No route found or invalid addresses.", nil)

var ErrNoDuration = exception.UpstreamError("Could not get duration.", nil)
