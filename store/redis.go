package store

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const redisKeyPrefix = "marketly:"

// RedisBackend stores each collection under a prefixed Redis string key.
type RedisBackend struct {
	rdb *redis.Client
}

var _ Backend = (*RedisBackend)(nil)

// NewRedisBackend connects to Redis and verifies the connection.
func NewRedisBackend(addr, password string, db int) (*RedisBackend, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrap(err, "redis ping failed")
	}

	return &RedisBackend{rdb: rdb}, nil
}

// GetClient returns the underlying Redis client
func (b *RedisBackend) GetClient() *redis.Client {
	return b.rdb
}

// Close closes the Redis connection
func (b *RedisBackend) Close() error {
	return b.rdb.Close()
}

func (b *RedisBackend) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := b.rdb.Get(ctx, redisKeyPrefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "redis get %s", key)
	}
	return v, true, nil
}

func (b *RedisBackend) Set(ctx context.Context, key, value string) error {
	return errors.Wrapf(b.rdb.Set(ctx, redisKeyPrefix+key, value, 0).Err(), "redis set %s", key)
}

func (b *RedisBackend) Delete(ctx context.Context, key string) error {
	return errors.Wrapf(b.rdb.Del(ctx, redisKeyPrefix+key).Err(), "redis del %s", key)
}
