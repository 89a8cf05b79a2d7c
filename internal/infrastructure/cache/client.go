package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/NadafMM/inventory-management-system-sub001/pkg/config"
	"github.com/NadafMM/inventory-management-system-sub001/pkg/logger"
)

// Client is a thin Redis wrapper used as a best-effort read cache. Backend
// failures degrade to cache misses; they never fail the request.
type Client struct {
	rdb *redis.Client
	log *logger.Logger
}

// New connects to Redis and verifies the connection with a ping.
func New(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Client{rdb: rdb, log: log}, nil
}

// Get returns the cached value and whether it was present.
func (c *Client) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		}
		return "", false
	}
	return val, true
}

// Set stores value under key with a TTL.
func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

// DeleteByPrefix removes every key matching prefix* using SCAN, so writes
// can invalidate whole listing families at once.
func (c *Client) DeleteByPrefix(ctx context.Context, prefix string) {
	iter := c.rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn().Err(err).Str("key", iter.Val()).Msg("cache delete failed")
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warn().Err(err).Str("prefix", prefix).Msg("cache scan failed")
	}
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
