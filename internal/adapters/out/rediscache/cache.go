// Package rediscache implements the menu cache on Redis. Entries expire by
// TTL only; nothing invalidates them eagerly.
package rediscache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// MenuCache implements ports.MenuCache on a Redis client.
type MenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMenuCache creates a menu cache with the given TTL.
func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{client: client, ttl: ttl}
}

func menuKey(restaurantID int64) string {
	return "menu:" + strconv.FormatInt(restaurantID, 10)
}

// Get returns the cached payload for a restaurant. A missing key is not an
// error.
func (c *MenuCache) Get(ctx context.Context, restaurantID int64) (string, bool, error) {
	payload, err := c.client.Get(ctx, menuKey(restaurantID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return payload, true, nil
}

// Set stores the payload for a restaurant with the configured TTL.
func (c *MenuCache) Set(ctx context.Context, restaurantID int64, payload string) error {
	return c.client.Set(ctx, menuKey(restaurantID), payload, c.ttl).Err()
}
