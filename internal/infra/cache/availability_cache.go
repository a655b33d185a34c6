// Package cache memoizes computed availability per provider and date.
package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AvailabilityCache interface {
	Get(ctx context.Context, providerID string, date time.Time) ([]string, bool)
	Set(ctx context.Context, providerID string, date time.Time, slots []string)
	Invalidate(ctx context.Context, providerID string, date time.Time)
	InvalidateProvider(ctx context.Context, providerID string)
}

// Noop never hits. Used when no redis address is configured.
type Noop struct{}

func (Noop) Get(context.Context, string, time.Time) ([]string, bool) { return nil, false }
func (Noop) Set(context.Context, string, time.Time, []string) {}
func (Noop) Invalidate(context.Context, string, time.Time) {}
func (Noop) InvalidateProvider(context.Context, string) {}

type RedisAvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

func NewRedisAvailabilityCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisAvailabilityCache {
	return &RedisAvailabilityCache{client: client, ttl: ttl, log: log}
}

func Key(providerID string, date time.Time) string {
	return "availability:" + providerID + ":" + date.Format(time.DateOnly)
}

// indexKey names the set of cached keys for one provider. It lives outside
// the availability: namespace so no provider ID can collide with it.
func indexKey(providerID string) string {
	return "availability-index:" + providerID
}

// Errors are logged and treated as a miss; the cache is never authoritative.
func (c *RedisAvailabilityCache) Get(ctx context.Context, providerID string, date time.Time) ([]string, bool) {
	raw, err := c.client.Get(ctx, Key(providerID, date)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("availability cache get failed", zap.String("provider_id", providerID), zap.Error(err))
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		c.log.Warn("availability cache entry corrupt", zap.String("provider_id", providerID), zap.Error(err))
		return nil, false
	}
	return slots, true
}

func (c *RedisAvailabilityCache) Set(ctx context.Context, providerID string, date time.Time, slots []string) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	key := Key(providerID, date)
	idx := indexKey(providerID)
	_, err = c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, key, raw, c.ttl)
		p.SAdd(ctx, idx, key)
		p.Expire(ctx, idx, c.ttl)
		return nil
	})
	if err != nil {
		c.log.Warn("availability cache set failed", zap.String("provider_id", providerID), zap.Error(err))
	}
}

func (c *RedisAvailabilityCache) Invalidate(ctx context.Context, providerID string, date time.Time) {
	key := Key(providerID, date)
	_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, key)
		p.SRem(ctx, indexKey(providerID), key)
		return nil
	})
	if err != nil {
		c.log.Warn("availability cache invalidate failed", zap.String("provider_id", providerID), zap.Error(err))
	}
}

// InvalidateProvider drops every cached date for the provider, e.g. after a
// schedule change. Keys come from the provider's index set, never from a
// pattern match, so IDs containing glob characters stay isolated.
func (c *RedisAvailabilityCache) InvalidateProvider(ctx context.Context, providerID string) {
	idx := indexKey(providerID)
	keys, err := c.client.SMembers(ctx, idx).Result()
	if err != nil {
		c.log.Warn("availability cache index read failed", zap.String("provider_id", providerID), zap.Error(err))
		return
	}
	if err := c.client.Del(ctx, append(keys, idx)...).Err(); err != nil {
		c.log.Warn("availability cache invalidate failed", zap.String("provider_id", providerID), zap.Error(err))
	}
}

var (
	_ AvailabilityCache = Noop{}
	_ AvailabilityCache = (*RedisAvailabilityCache)(nil)
)
