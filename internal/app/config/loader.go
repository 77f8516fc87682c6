package config

import (
	"log/slog"
	"reflect"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// MustInitConfig reads configFile (dotenv format) when present, then the environment,
// which wins over the file. Every key is bound from the mapstructure tags of Config, so
// variables without a default still reach the struct. It panics on values that cannot
// be decoded, like a malformed duration.
func MustInitConfig(configFile string) Config {
	var (
		vpr = viper.New()
		cfg Config
	)

	setDefaults(vpr)

	vpr.AutomaticEnv()

	vpr.SetConfigFile(configFile)
	vpr.SetConfigType("env")

	if err := vpr.ReadInConfig(); err != nil {
		slog.Warn("config file not found or cannot be read, using environment variables",
			slog.String("file", configFile),
			slog.String("error", err.Error()))
	} else {
		slog.Info("config file loaded successfully", slog.String("file", configFile))
	}

	bindEnv(vpr, reflect.TypeOf(Config{}))

	if err := vpr.Unmarshal(&cfg); err != nil {
		slog.Error("cannot unmarshal config", slog.String("error", err.Error()))
		panic(err)
	}

	return cfg
}

func setDefaults(vpr *viper.Viper) {
	vpr.SetDefault("LOG_LEVEL", "info")

	vpr.SetDefault("HTTP_PORT", 8080)
	vpr.SetDefault("HTTP_TIMEOUT", "30s")

	vpr.SetDefault("REDIS_ADDR", "localhost:6379")
	vpr.SetDefault("REDIS_TIMEOUT", "3s")

	vpr.SetDefault("FLIGHT_PROVIDER", "aviationstack")
	vpr.SetDefault("AVIATIONSTACK_TIMEOUT", "10s")
	vpr.SetDefault("AVIATIONSTACK_LIST_LIMIT", 50)
	vpr.SetDefault("AVIATIONSTACK_LOOKUP_LIMIT", 5)
	vpr.SetDefault("MOCK_FLIGHTS_FILE", "data/mock_flights.json")
	vpr.SetDefault("BOARD_CACHE_EXPIRATION", "60s")
	vpr.SetDefault("LOOKUP_CACHE_EXPIRATION", "120s")
	vpr.SetDefault("CACHE_LOCK_TIMEOUT", "10s")

	vpr.SetDefault("GOOGLE_MAPS_TIMEOUT", "10s")

	vpr.SetDefault("PICKUP_DEBOUNCE", "600ms")
	vpr.SetDefault("PICKUP_LANDING_WINDOW", "30m")
}

// bindEnv binds the variable named by every mapstructure tag of t, descending into
// squashed sub-structs.
func bindEnv(vpr *viper.Viper, t reflect.Type) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		name, opts, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if slices.Contains(strings.Split(opts, ","), "squash") && field.Type.Kind() == reflect.Struct {
			bindEnv(vpr, field.Type)
			continue
		}

		if name != "" && name != "-" {
			_ = vpr.BindEnv(name)
		}
	}
}
