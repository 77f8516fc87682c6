package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Flights  Flights    `mapstructure:",squash"`
	Maps     Maps       `mapstructure:",squash"`
	Pickup   Pickup     `mapstructure:",squash"`
	Airports Airports   `mapstructure:",squash"`
}

// LogValue hides credentials when the config is logged.
func (c Config) LogValue() slog.Value {
	redacted := c
	redacted.Redis.Password = redact(c.Redis.Password)
	redacted.Flights.AviationStack.APIKey = redact(c.Flights.AviationStack.APIKey)
	redacted.Maps.APIKey = redact(c.Maps.APIKey)

	return slog.AnyValue(configView(redacted))
}

// configView drops the LogValue method so slog does not recurse.
type configView Config

func redact(secret string) string {
	if secret == "" {
		return ""
	}

	return "***"
}

type HTTP struct {
	Port           int           `mapstructure:"HTTP_PORT"`
	Timeout        time.Duration `mapstructure:"HTTP_TIMEOUT"`
	// comma separated web origins allowed by CORS
	AllowedOrigins []string      `mapstructure:"HTTP_ALLOWED_ORIGINS"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// AviationStack holds the flight data provider settings. Without an API key every
// call fails with a configuration error.
type AviationStack struct {
	APIKey       string        `mapstructure:"AVIATIONSTACK_API_KEY"`
	BaseURL      string        `mapstructure:"AVIATIONSTACK_BASE_URL"`
	Timeout      time.Duration `mapstructure:"AVIATIONSTACK_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"AVIATIONSTACK_RATE_LIMIT"`
	ListLimit    int           `mapstructure:"AVIATIONSTACK_LIST_LIMIT"`
	LookupLimit  int           `mapstructure:"AVIATIONSTACK_LOOKUP_LIMIT"`
}

type Flights struct {
	Provider              string        `mapstructure:"FLIGHT_PROVIDER"`
	AviationStack         AviationStack `mapstructure:",squash"`
	MockFile              string        `mapstructure:"MOCK_FLIGHTS_FILE"`
	BoardCacheExpiration  time.Duration `mapstructure:"BOARD_CACHE_EXPIRATION"`
	LookupCacheExpiration time.Duration `mapstructure:"LOOKUP_CACHE_EXPIRATION"`
	LockTimeout           time.Duration `mapstructure:"CACHE_LOCK_TIMEOUT"`
}

type Maps struct {
	APIKey  string        `mapstructure:"GOOGLE_MAPS_API_KEY"`
	BaseURL string        `mapstructure:"GOOGLE_MAPS_BASE_URL"`
	Timeout time.Duration `mapstructure:"GOOGLE_MAPS_TIMEOUT"`
}

type Pickup struct {
	Debounce      time.Duration `mapstructure:"PICKUP_DEBOUNCE"`
	LandingWindow time.Duration `mapstructure:"PICKUP_LANDING_WINDOW"`
}

// Airports overrides the embedded airport seed list when File is set.
type Airports struct {
	File string `mapstructure:"AIRPORTS_FILE"`
}
