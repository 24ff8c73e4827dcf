// Package redis keeps fetched lead websites in Redis so repeated
// verification of the same site within the TTL skips the network.
package redis

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"outreach-engine/internal/adapter/enrich"
)

const keyPrefix = "outreach:page:"

// PageCache implements enrich.PageCache on a Redis client.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache returns a cache whose entries expire after ttl.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	return &PageCache{client: client, ttl: ttl}
}

func key(url string) string {
	sum := sha1.Sum([]byte(url))
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached page for url. A missing key is a miss, not an
// error.
func (c *PageCache) Get(ctx context.Context, url string) (enrich.Page, bool, error) {
	str, err := c.client.Get(ctx, key(url)).Result()
	if errors.Is(err, redis.Nil) {
		return enrich.Page{}, false, nil
	}
	if err != nil {
		return enrich.Page{}, false, err
	}
	var p enrich.Page
	if err = json.Unmarshal([]byte(str), &p); err != nil {
		return enrich.Page{}, false, err
	}
	return p, true, nil
}

// Set stores page under its URL.
func (c *PageCache) Set(ctx context.Context, page enrich.Page) error {
	b, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(page.URL), b, c.ttl).Err()
}
