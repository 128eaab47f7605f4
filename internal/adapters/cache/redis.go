package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/aromaline/inventory-service/internal/app/catalog/dto"
)

const productKeyPrefix = "product:"

// NewClient creates and pings a go-redis client.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// ProductCache is a read-through cache for single-product lookups. Cache
// failures degrade to a database read and are only logged; the cache is never
// on the write path's critical section, so stale entries are bounded by the
// TTL plus explicit invalidation after every successful commit.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewProductCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *ProductCache {
	return &ProductCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached DTO and true on a hit.
func (c *ProductCache) Get(ctx context.Context, productID string) (*dto.ProductDTO, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, productKeyPrefix+productID).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("product cache read failed", zap.String("product_id", productID), zap.Error(err))
		return nil, false
	}

	var out dto.ProductDTO
	if err := json.Unmarshal(raw, &out); err != nil {
		c.logger.Warn("product cache entry corrupt", zap.String("product_id", productID), zap.Error(err))
		return nil, false
	}
	return &out, true
}

func (c *ProductCache) Set(ctx context.Context, product *dto.ProductDTO) {
	if c == nil || c.client == nil || product == nil {
		return
	}

	raw, err := json.Marshal(product)
	if err != nil {
		c.logger.Warn("product cache marshal failed", zap.String("product_id", product.ProductID), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, productKeyPrefix+product.ProductID, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("product cache write failed", zap.String("product_id", product.ProductID), zap.Error(err))
	}
}

// Invalidate drops the cached entry. Called after every successful mutation.
func (c *ProductCache) Invalidate(ctx context.Context, productID string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, productKeyPrefix+productID).Err(); err != nil {
		c.logger.Warn("product cache invalidation failed", zap.String("product_id", productID), zap.Error(err))
	}
}
