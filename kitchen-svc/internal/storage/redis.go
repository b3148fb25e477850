package storage

import (
	"context"
	"encoding/json"
	"time"

	"restaurant-pos/kitchen-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const badgeKey = "kitchen:badges"

type RedisBadgeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisBadgeCache(client *redis.Client, ttl time.Duration) *RedisBadgeCache {
	return &RedisBadgeCache{Client: client, TTL: ttl}
}

func (c *RedisBadgeCache) SetCounts(ctx context.Context, counts domain.BadgeCounts) error {
	payload, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, badgeKey, payload, c.TTL).Err()
}

func (c *RedisBadgeCache) GetCounts(ctx context.Context) (*domain.BadgeCounts, error) {
	payload, err := c.Client.Get(ctx, badgeKey).Bytes()
	if err != nil {
		return nil, err
	}
	var counts domain.BadgeCounts
	if err := json.Unmarshal(payload, &counts); err != nil {
		return nil, err
	}
	return &counts, nil
}
