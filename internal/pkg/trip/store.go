// Package trip persists the per-session trip overview selection in Redis so
// a visitor's picked flight and hotel survive across requests and instances.
package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"travel-explorer-service/internal/app/dto"
)

// ErrNotFound is returned when the session has no stored trip.
var ErrNotFound = errors.New("trip not found")

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type Store struct {
	redis RedisClient
}

func NewStore(redis RedisClient) *Store {
	return &Store{
		redis: redis,
	}
}

func (s *Store) Key(sessionID string) string {
	return fmt.Sprintf("trip:session:%s", sessionID)
}

func (s *Store) Get(ctx context.Context, sessionID string) (dto.TripOverview, error) {
	data, err := s.redis.Get(ctx, s.Key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return dto.TripOverview{}, ErrNotFound
	}

	if err != nil {
		return dto.TripOverview{}, fmt.Errorf("failed to get trip: %w", err)
	}

	var trip dto.TripOverview
	if err := json.Unmarshal(data, &trip); err != nil {
		return dto.TripOverview{}, fmt.Errorf("failed to unmarshal trip: %w", err)
	}

	return trip, nil
}

func (s *Store) Save(ctx context.Context, sessionID string, trip dto.TripOverview, expiration time.Duration) error {
	data, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("failed to marshal trip: %w", err)
	}

	if err := s.redis.Set(ctx, s.Key(sessionID), data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set trip: %w", err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.redis.Del(ctx, s.Key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	return nil
}
