package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

const (
	catalogKey = "catalog:products"
	catalogTTL = 5 * time.Minute
)

// CatalogCache keeps the full product listing in Redis. The catalog is small
// and read-heavy; any mutation drops the key and the next List refills it.
// Cache failures are advisory only; Mongo stays authoritative.
type CatalogCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewCatalogCache(client *redis.Client, log zerolog.Logger) *CatalogCache {
	return &CatalogCache{client: client, log: log}
}

// Get returns the cached listing and whether it was present and decodable.
func (c *CatalogCache) Get(ctx context.Context) ([]domain.Product, bool) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("catalog cache read failed")
		}
		return nil, false
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache entry corrupted, dropping")
		c.Invalidate(ctx)
		return nil, false
	}
	return products, true
}

func (c *CatalogCache) Set(ctx context.Context, products []domain.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		c.log.Warn().Err(err).Msg("catalog cache encode failed")
		return
	}
	if err := c.client.Set(ctx, catalogKey, raw, catalogTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache write failed")
	}
}

func (c *CatalogCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
