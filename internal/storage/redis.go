package storage

import (
	"context"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
)

// ListingCache keeps rendered menu/category listings in redis for a short
// TTL so repeated browsing does not hammer the remote API.
type ListingCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{Client: client, TTL: ttl}
}

// MenuKey derives the cache key from the full filter state, so every distinct
// query caches independently.
func (c *ListingCache) MenuKey(values url.Values) string {
	return "listing:menu:" + values.Encode()
}

func (c *ListingCache) CategoriesKey() string {
	return "listing:categories"
}

func (c *ListingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (c *ListingCache) Set(ctx context.Context, key string, payload []byte) error {
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}
