package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/YeshwantRaoB/organizon-web/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	CacheVersionKey        = "products:version"
	ProductListCachePrefix = "products:v:"

	DefaultCacheTTL = 5 * time.Minute
)

// ProductCache stores catalogue reads in Redis. Every key embeds the
// current version; a write bumps the version so older entries are never
// read again and age out by TTL. A nil client disables caching.
type ProductCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ProductCache{redis: client, ttl: ttl}
}

func (pc *ProductCache) enabled() bool {
	return pc != nil && pc.redis != nil
}

func listKey(version int64, q models.ProductQuery) string {
	return fmt.Sprintf("%s%d:list:p:%d:l:%d:c:%s:sc:%s:s:%s",
		ProductListCachePrefix, version, q.Page, q.Limit, q.Category, q.Subcategory, q.Search)
}

func detailKey(version int64, idOrSKU string) string {
	return fmt.Sprintf("%s%d:detail:%s", ProductListCachePrefix, version, idOrSKU)
}

func (pc *ProductCache) GetList(ctx context.Context, q models.ProductQuery) (*models.ProductListResponse, bool) {
	var out models.ProductListResponse
	if !pc.get(ctx, func(v int64) string { return listKey(v, q) }, &out) {
		return nil, false
	}
	return &out, true
}

func (pc *ProductCache) SetList(ctx context.Context, q models.ProductQuery, resp *models.ProductListResponse) {
	pc.set(ctx, func(v int64) string { return listKey(v, q) }, resp)
}

func (pc *ProductCache) GetProduct(ctx context.Context, idOrSKU string) (*models.Product, bool) {
	var out models.Product
	if !pc.get(ctx, func(v int64) string { return detailKey(v, idOrSKU) }, &out) {
		return nil, false
	}
	return &out, true
}

func (pc *ProductCache) SetProduct(ctx context.Context, idOrSKU string, p *models.Product) {
	pc.set(ctx, func(v int64) string { return detailKey(v, idOrSKU) }, p)
}

// Invalidate bumps the version, orphaning every cached list and detail.
func (pc *ProductCache) Invalidate(ctx context.Context) {
	if !pc.enabled() {
		return
	}
	v, err := pc.redis.Incr(ctx, CacheVersionKey).Result()
	if err != nil {
		zap.L().Error("Failed to invalidate product cache", zap.Error(err))
		return
	}
	zap.L().Debug("Product cache invalidated", zap.Int64("new_version", v))
}

func (pc *ProductCache) get(ctx context.Context, key func(int64) string, dst interface{}) bool {
	if !pc.enabled() {
		return false
	}
	version, err := pc.version(ctx)
	if err != nil {
		return false
	}
	raw, err := pc.redis.Get(ctx, key(version)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zap.L().Warn("Product cache read failed", zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		zap.L().Warn("Failed to unmarshal cached products", zap.Error(err))
		return false
	}
	return true
}

func (pc *ProductCache) set(ctx context.Context, key func(int64) string, v interface{}) {
	if !pc.enabled() {
		return
	}
	version, err := pc.version(ctx)
	if err != nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		zap.L().Warn("Failed to marshal products for cache", zap.Error(err))
		return
	}
	if err := pc.redis.Set(ctx, key(version), raw, pc.ttl).Err(); err != nil {
		zap.L().Warn("Failed to cache products", zap.Error(err))
	}
}

// version reads the current version, seeding it with 1 on first use.
func (pc *ProductCache) version(ctx context.Context) (int64, error) {
	v, err := pc.redis.Get(ctx, CacheVersionKey).Int64()
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, redis.Nil) {
		return 0, err
	}
	if err := pc.redis.SetNX(ctx, CacheVersionKey, 1, 0).Err(); err != nil {
		return 0, err
	}
	return pc.redis.Get(ctx, CacheVersionKey).Int64()
}
