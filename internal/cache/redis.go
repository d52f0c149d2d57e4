package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vytor/hoopstats/internal/logger"
)

type redisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedis stores entries in redis with the given TTL.
func NewRedis(client redis.UniversalClient, ttl time.Duration) ChartCache {
	return &redisCache{client: client, ttl: ttl}
}

// Dial connects to addr and verifies the connection.
func Dial(ctx context.Context, addr string, db int, ttl time.Duration) (ChartCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return NewRedis(client, ttl), nil
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	log := logger.FromContext(ctx).WithPrefix("chart_cache")

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		log.Debug("cache miss: key=%s", key)
		return nil, false, nil
	}
	if err != nil {
		log.Warn("cache get failed: key=%s, err=%v", key, err)
		return nil, false, err
	}
	log.Debug("cache hit: key=%s, bytes=%d", key, len(data))
	return data, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, data []byte) error {
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.FromContext(ctx).WithPrefix("chart_cache").Warn("cache set failed: key=%s, err=%v", key, err)
		return err
	}
	return nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
