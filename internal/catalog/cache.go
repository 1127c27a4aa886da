package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/rueidis"
	"go.uber.org/zap"

	"github.com/velour-cloud/scentsearch/internal/domain"
)

// Cache is a read-through Redis cache in front of the remote sources,
// so replicas share one backend fetch per TTL window. Cache failures
// never fail a request: a broken cache degrades to a direct fetch.
type Cache struct {
	client   rueidis.Client
	products ProductSource
	entries  EntrySource
	ttl      time.Duration
	prefix   string
	logger   *zap.Logger
}

// NewCache creates a read-through cache over the given sources.
func NewCache(
	client rueidis.Client, products ProductSource, entries EntrySource,
	ttl time.Duration, prefix string, logger *zap.Logger,
) *Cache {
	return &Cache{
		client:   client,
		products: products,
		entries:  entries,
		ttl:      ttl,
		prefix:   prefix,
		logger:   logger,
	}
}

// Products serves the catalog from Redis, fetching and caching on miss.
func (c *Cache) Products(ctx context.Context) ([]domain.Product, error) {
	key := c.prefix + "catalog:products"

	var cached []domain.Product
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}

	fresh, err := c.products.Products(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, fresh)
	return fresh, nil
}

// Entries serves the journal from Redis, fetching and caching on miss.
func (c *Cache) Entries(ctx context.Context) ([]domain.JournalEntry, error) {
	key := c.prefix + "content:journal"

	var cached []domain.JournalEntry
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}

	fresh, err := c.entries.Entries(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, fresh)
	return fresh, nil
}

func (c *Cache) lookup(ctx context.Context, key string, v any) bool {
	cmd := c.client.B().Get().Key(key).Build()
	data, err := c.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if !rueidis.IsRedisNil(err) {
			c.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		c.logger.Warn("cache payload corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *Cache) store(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	cmd := c.client.B().Set().Key(key).Value(string(data)).Ex(c.ttl).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		c.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}
