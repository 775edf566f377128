package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store is the durable per-origin key/value store backing cart snapshots and
// search history. Get reports found=false for a missing key instead of an
// error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type redisStore struct {
	redisClient *redis.Client
	keyPrefix   string
}

// NewRedisStore returns a Store persisted in Redis under the given key prefix.
func NewRedisStore(redisClient *redis.Client, keyPrefix string) Store {
	return &redisStore{
		redisClient: redisClient,
		keyPrefix:   keyPrefix,
	}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.redisClient.Get(ctx, s.keyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil // nothing stored yet
		}
		return nil, false, fmt.Errorf("failed to get key %s: %w", key, err)
	}

	return val, true, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.redisClient.Set(ctx, s.keyPrefix+key, value, 0).Err() // No expiration
	if err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	err := s.redisClient.Del(ctx, s.keyPrefix+key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
