// Package cache provides a Redis-backed read-aside cache for hot repository lookups.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"pushgate/internal/errors"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Client is the minimal key/value surface used by the cached repositories.
type Client interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	// Incr atomically increments the integer at key, starting from 0, and returns the new value.
	Incr(ctx context.Context, key string) (int64, error)
	Close() error
}

// RedisClient wraps go-redis and stores values as JSON.
type RedisClient struct {
	rdb *redis.Client
}

// NewRedisClient connects and pings the server, failing fast on a bad address.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()

		return nil, errors.Wrap(err, "redis ping failed")
	}

	return &RedisClient{rdb: rdb}, nil
}

func (c *RedisClient) Get(ctx context.Context, key string, dest any) error {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(json.Unmarshal(val, dest))
}

func (c *RedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.rdb.Set(ctx, key, data, ttl).Err())
}

func (c *RedisClient) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return errors.WithStack(c.rdb.Del(ctx, keys...).Err())
}

func (c *RedisClient) Incr(ctx context.Context, key string) (int64, error) {
	n, err := c.rdb.Incr(ctx, key).Result()

	return n, errors.WithStack(err)
}

func (c *RedisClient) Close() error {
	return errors.WithStack(c.rdb.Close())
}
