package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"classboard/models"

	"github.com/go-redis/redis/v8"
)

// ItemCache caches item listings. An empty scheduleID means every item.
// Get reports ok=false on a miss.
type ItemCache interface {
	Get(ctx context.Context, scheduleID string) (items []models.ScheduleItem, ok bool, err error)
	Set(ctx context.Context, scheduleID string, items []models.ScheduleItem) error
	Invalidate(ctx context.Context) error
}

const itemCachePrefix = "schedule:items:"

type RedisItemCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisItemCache(client *redis.Client, ttl time.Duration) *RedisItemCache {
	return &RedisItemCache{client: client, ttl: ttl}
}

func itemCacheKey(scheduleID string) string {
	if scheduleID == "" {
		return itemCachePrefix + "all"
	}
	return itemCachePrefix + "schedule:" + scheduleID
}

func (c *RedisItemCache) Get(ctx context.Context, scheduleID string) ([]models.ScheduleItem, bool, error) {
	data, err := c.client.Get(ctx, itemCacheKey(scheduleID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var items []models.ScheduleItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (c *RedisItemCache) Set(ctx context.Context, scheduleID string, items []models.ScheduleItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, itemCacheKey(scheduleID), data, c.ttl).Err()
}

// Invalidate drops every cached listing; any item write can affect several keys.
func (c *RedisItemCache) Invalidate(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, itemCachePrefix+"*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
