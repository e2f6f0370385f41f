// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// catalog.go provides a Valkey-backed cache for serialized public catalog
// responses. The anonymous category listing is the hot path; caching the JSON
// bytes skips the DB query entirely on a hit.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// catalogKeyPrefix is the Valkey key prefix for cached catalog responses.
	catalogKeyPrefix = "catalog:"

	// DefaultTTL is how long a cached response stays valid.
	DefaultTTL = 5 * time.Minute
)

// CatalogCache stores serialized JSON responses in Valkey. A nil *CatalogCache
// is a valid no-op cache, so callers run unchanged when Valkey is down.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a catalog cache backed by the given Valkey client.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &CatalogCache{client: client, ttl: ttl}
}

// Get retrieves a cached response body. Returns false on miss or when the
// cache is disabled.
func (cc *CatalogCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if cc == nil {
		return nil, false
	}
	val, err := cc.client.Get(ctx, catalogKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("catalog cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("catalog cache hit", "key", key)
	return val, true
}

// Set stores a response body under the key with the configured TTL.
func (cc *CatalogCache) Set(ctx context.Context, key string, body []byte) {
	if cc == nil {
		return
	}
	if err := cc.client.Set(ctx, catalogKeyPrefix+key, body, cc.ttl).Err(); err != nil {
		slog.Warn("catalog cache set error", "key", key, "error", err)
	}
}

// Invalidate removes a single cached response.
func (cc *CatalogCache) Invalidate(ctx context.Context, key string) {
	if cc == nil {
		return
	}
	if err := cc.client.Del(ctx, catalogKeyPrefix+key).Err(); err != nil {
		slog.Warn("catalog cache invalidate error", "key", key, "error", err)
	}
	slog.Debug("catalog cache invalidated", "key", key)
}

// CategoriesKey returns the cache key for the public category listing.
func CategoriesKey() string {
	return "categories"
}
