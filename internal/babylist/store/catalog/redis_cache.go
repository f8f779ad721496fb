package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"babylist/internal/babylist/metrics"
	"babylist/internal/babylist/models"
	"babylist/internal/babylist/ports"
)

const (
	cacheKeyPrefix = "babylist:catalog:"

	// notSold marks SKUs the catalog does not sell so they are not looked up again.
	notSold = "-"

	DefaultCacheTTL = 5 * time.Minute
)

// RedisCache is a read-through cache in front of a catalog lookup. Cache
// errors degrade to the underlying lookup; they never fail a fetch.
type RedisCache struct {
	next    ports.CatalogLookup
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
}

type CacheOption func(*RedisCache)

func WithCacheTTL(ttl time.Duration) CacheOption {
	return func(c *RedisCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func WithCacheMetrics(m *metrics.Metrics) CacheOption {
	return func(c *RedisCache) {
		c.metrics = m
	}
}

func WithCacheLogger(logger *slog.Logger) CacheOption {
	return func(c *RedisCache) {
		c.logger = logger
	}
}

func NewRedisCache(next ports.CatalogLookup, client *redis.Client, opts ...CacheOption) (*RedisCache, error) {
	if next == nil {
		return nil, fmt.Errorf("catalog lookup is required")
	}
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	c := &RedisCache{
		next:   next,
		client: client,
		ttl:    DefaultCacheTTL,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *RedisCache) BulkFetch(ctx context.Context, skus []string) (map[string]models.CatalogEntry, error) {
	entries := make(map[string]models.CatalogEntry, len(skus))
	if len(skus) == 0 {
		return entries, nil
	}

	missing := c.readCached(ctx, skus, entries)
	c.metrics.AddCatalogCacheResult(len(skus)-len(missing), len(missing))
	if len(missing) == 0 {
		return entries, nil
	}

	fetched, err := c.next.BulkFetch(ctx, missing)
	if err != nil {
		return nil, err
	}
	for sku, entry := range fetched {
		entries[sku] = entry
	}
	c.writeCached(ctx, missing, fetched)
	return entries, nil
}

// readCached fills entries from the cache and returns the SKUs it could not serve.
func (c *RedisCache) readCached(ctx context.Context, skus []string, entries map[string]models.CatalogEntry) []string {
	keys := make([]string, len(skus))
	for i, sku := range skus {
		keys[i] = cacheKeyPrefix + sku
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		c.logger.WarnContext(ctx, "catalog cache read failed", "error", err)
		return skus
	}

	var missing []string
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			missing = append(missing, skus[i])
			continue
		}
		if raw == notSold {
			continue
		}
		var entry models.CatalogEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			missing = append(missing, skus[i])
			continue
		}
		entries[skus[i]] = entry
	}
	return missing
}

func (c *RedisCache) writeCached(ctx context.Context, skus []string, fetched map[string]models.CatalogEntry) {
	pipe := c.client.Pipeline()
	for _, sku := range skus {
		value := notSold
		if entry, ok := fetched[sku]; ok {
			encoded, err := json.Marshal(entry)
			if err != nil {
				continue
			}
			value = string(encoded)
		}
		pipe.Set(ctx, cacheKeyPrefix+sku, value, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.WarnContext(ctx, "catalog cache write failed", "error", err)
	}
}
