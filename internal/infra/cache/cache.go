package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flashmart/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Client wraps the redis counter primitives the engines rely on: get/set with
// TTL, atomic increment/decrement, and set-if-absent. The cache is advisory;
// callers treat every error here as best-effort and fall back to the durable
// store.
type Client struct {
	rdb *redis.Client
}

func Connect(cfg config.RedisConfig) (*Client, func(), error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cleanup := func() {
		_ = rdb.Close()
	}

	return &Client{rdb: rdb}, cleanup, nil
}

// Get returns the counter value and whether the key exists.
func (c *Client) Get(ctx context.Context, key string) (int64, bool, error) {
	val, err := c.rdb.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return val, true, nil
}

func (c *Client) Set(ctx context.Context, key string, value int64, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *Client) IncrBy(ctx context.Context, key string, n int64) (int64, error) {
	return c.rdb.IncrBy(ctx, key, n).Result()
}

func (c *Client) DecrBy(ctx context.Context, key string, n int64) (int64, error) {
	return c.rdb.DecrBy(ctx, key, n).Result()
}

// SetNX stores the value only when the key is absent. Used as the atomic
// admission primitive for per-user rate limiting.
func (c *Client) SetNX(ctx context.Context, key string, value int64, ttl time.Duration) (bool, error) {
	return c.rdb.SetNX(ctx, key, value, ttl).Result()
}
