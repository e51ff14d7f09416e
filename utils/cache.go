// File: utils/cache.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"bookerly/config"
	"bookerly/models"
)

// NewCacheClient initializes the Redis cache client and verifies the
// connection. The client is owned by the caller and closed on shutdown.
func NewCacheClient() (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis (cache): %w", err)
	}
	return client, nil
}

// AvailabilityCache caches month-availability views per booking link with a
// short TTL. Availability drifts with wall-clock time even without writes,
// so the TTL stays small; commits additionally invalidate the whole link.
type AvailabilityCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func monthKey(linkID string, year, month int) string {
	return fmt.Sprintf("availability:%s:%04d-%02d", linkID, year, month)
}

func (c *AvailabilityCache) Get(ctx context.Context, linkID string, year, month int) ([]models.DayAvailability, bool) {
	data, err := c.Client.Get(ctx, monthKey(linkID, year, month)).Result()
	if err != nil {
		return nil, false
	}
	var days []models.DayAvailability
	if err := json.Unmarshal([]byte(data), &days); err != nil {
		return nil, false
	}
	return days, true
}

func (c *AvailabilityCache) Set(ctx context.Context, linkID string, year, month int, days []models.DayAvailability) {
	data, err := json.Marshal(days)
	if err != nil {
		return
	}
	if err := c.Client.Set(ctx, monthKey(linkID, year, month), data, c.TTL).Err(); err != nil {
		zap.L().Warn("failed to cache availability", zap.String("linkId", linkID), zap.Error(err))
	}
}

// Invalidate drops every cached month for the link.
func (c *AvailabilityCache) Invalidate(ctx context.Context, linkID string) {
	iter := c.Client.Scan(ctx, 0, fmt.Sprintf("availability:%s:*", linkID), 100).Iterator()
	for iter.Next(ctx) {
		c.Client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		zap.L().Warn("failed to invalidate availability cache", zap.String("linkId", linkID), zap.Error(err))
	}
}
