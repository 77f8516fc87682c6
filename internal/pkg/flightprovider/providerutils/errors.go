package providerutils

import (
	"net/http"

	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/exception"
)

var ErrProviderRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "provider rate limit exceeded",
}

var ErrMissingAPIKey = exception.ConfigurationError("AVIATIONSTACK_API_KEY is not configured.")
