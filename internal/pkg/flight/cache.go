package flight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/dto"
	"github.com/redis/go-redis/v9"
)

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// FlightCache stores raw provider results. Board results are keyed by airport and
// direction, lookups by flight code.
type FlightCache struct {
	redis RedisClient
}

func NewFlightCache(redis RedisClient) *FlightCache {
	return &FlightCache{
		redis: redis,
	}
}

func (c *FlightCache) BoardCacheKey(airport string, direction dto.Direction) string {
	return fmt.Sprintf("flight:board:%s:%s", strings.ToUpper(airport), direction)
}

func (c *FlightCache) LookupCacheKey(code string) string {
	return fmt.Sprintf("flight:lookup:%s", strings.ToUpper(code))
}

// LockKey derives the fill lock of a cache key.
func (c *FlightCache) LockKey(cacheKey string) string {
	return cacheKey + ":lock"
}

func (c *FlightCache) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, key, "1", timeout).Result()
}

func (c *FlightCache) ReleaseLock(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}

func (c *FlightCache) SetFlights(ctx context.Context,
	key string,
	flights []dto.RawFlight,
	metadata dto.CacheMetadata,
	expiration time.Duration,
) error {
	data, err := json.Marshal(flights)
	if err != nil {
		return fmt.Errorf("failed to marshal flights: %w", err)
	}

	err = c.redis.Set(ctx, key, data, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set flights: %w", err)
	}

	metadataBytes, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	err = c.redis.Set(ctx, key+":metadata", metadataBytes, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set metadata: %w", err)
	}

	return nil
}

// GetFlights returns redis.Nil when the key is absent.
func (c *FlightCache) GetFlights(ctx context.Context, key string) ([]dto.RawFlight, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var flights []dto.RawFlight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, fmt.Errorf("failed to unmarshal flights: %w", err)
	}

	return flights, nil
}

func (c *FlightCache) GetMetadata(ctx context.Context, key string) (dto.CacheMetadata, error) {
	metadataBytes, err := c.redis.Get(ctx, key+":metadata").Bytes()
	if err != nil {
		return dto.CacheMetadata{}, err
	}

	var metadata dto.CacheMetadata
	if err := json.Unmarshal(metadataBytes, &metadata); err != nil {
		return dto.CacheMetadata{}, fmt.Errorf("failed to unmarshal metadata: %w", err)
	}

	return metadata, nil
}
