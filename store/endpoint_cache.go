// Package store provides descriptor caching between the resolver and the
// endpoint client.
package store

import (
	"context"
	"time"

	"github.com/viccon/sturdyc"

	"github.com/goliatone/go-assets/core"
)

const evictionPercentage = 10

// EndpointCache memoizes endpoint descriptors per request cache key. Stampede
// protection and early refresh come from sturdyc; a nil cache degrades to a
// direct fetch.
type EndpointCache struct {
	client *sturdyc.Client[core.Endpoint]
}

func NewEndpointCache(cfg core.CacheConfig) *EndpointCache {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = 256
	}
	shards := cfg.Shards
	if shards <= 0 {
		shards = 16
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &EndpointCache{
		client: sturdyc.New[core.Endpoint](capacity, shards, ttl, evictionPercentage),
	}
}

func (c *EndpointCache) GetOrFetch(
	ctx context.Context,
	key string,
	fetch func(ctx context.Context) (core.Endpoint, error),
) (core.Endpoint, error) {
	if c == nil || c.client == nil {
		return fetch(ctx)
	}
	return c.client.GetOrFetch(ctx, key, fetch)
}

var _ core.EndpointCache = (*EndpointCache)(nil)
