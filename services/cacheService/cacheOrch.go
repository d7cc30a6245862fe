package cacheService

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "settler:boxscore:"

// PayloadCache keeps raw provider payloads in redis so predictions sharing a game
// don't refetch the same box score. A nil *PayloadCache is a valid no-op cache.
type PayloadCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *slog.Logger
}

func New(rdb *redis.Client, ttl time.Duration, log *slog.Logger) *PayloadCache {
	if rdb == nil {
		return nil
	}
	return &PayloadCache{rdb: rdb, ttl: ttl, log: log}
}

func (c *PayloadCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	return payload, true
}

func (c *PayloadCache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, keyPrefix+key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("cache write failed", "key", key, "error", err)
	}
}
