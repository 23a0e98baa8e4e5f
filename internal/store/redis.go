package store

import (
	"context"
	"errors"
	"fmt"

	redis "github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

// RedisStore keeps the collection as one JSON document stored at a single
// Redis key. The whole value is replaced on every Save.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects to the Redis instance at addr and returns a store
// using key. A ping is performed to verify connectivity.
func NewRedisStore(ctx context.Context, addr, password, key string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password, // empty string means no auth
		DB:       0,
		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisStore{client: client, key: key}, nil
}

// Load fetches the collection. A missing key is initialised to an empty
// array.
func (s *RedisStore) Load(ctx context.Context) ([]User, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		if err := s.client.Set(ctx, s.key, emptyCollection, 0).Err(); err != nil {
			return nil, fmt.Errorf("redis set failed: %w", err)
		}
		return []User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return decode(data), nil
}

// Save overwrites the key with the encoded collection.
func (s *RedisStore) Save(ctx context.Context, users []User) error {
	data, err := encode(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
