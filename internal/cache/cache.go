package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tech2globe/blogapi/pkg/config"
	"github.com/tech2globe/blogapi/pkg/logging"
)

// Store is the backing key-value store behind the cache facade. Values are
// serialized JSON; an absent or expired key is a miss, never an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Clear(ctx context.Context)
	Close() error
	Health(ctx context.Context) error
}

// Cache is the read-through cache used by every handler. It is created once
// at startup and passed by reference; there is no package-level instance.
type Cache struct {
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

// New creates a cache from configuration: an in-process memory store by
// default, or Redis when redis_url is set.
func New(cfg *config.CacheConfig) (*Cache, error) {
	logger := logging.WithComponent("cache")

	var store Store
	if cfg.RedisURL != "" {
		redisStore, err := newRedisStore(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis store: %w", err)
		}
		store = redisStore
		logger.Info("Redis cache backend enabled")
	} else {
		store = newMemoryStore()
		logger.Info("In-process cache backend enabled", zap.Duration("ttl", cfg.TTL))
	}

	return &Cache{store: store, ttl: cfg.TTL, logger: logger}, nil
}

// NewWithStore creates a cache over an explicit store. Used by tests.
func NewWithStore(store Store, ttl time.Duration) *Cache {
	return &Cache{store: store, ttl: ttl, logger: logging.WithComponent("cache")}
}

// Get retrieves the raw value stored under key. The second return is false
// when the key is absent or its TTL has elapsed.
func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	return c.store.Get(ctx, namespaceKey(key))
}

// Set stores a value under key with the configured TTL.
func (c *Cache) Set(ctx context.Context, key, value string) {
	c.store.Set(ctx, namespaceKey(key), value, c.ttl)
}

// Delete removes a key.
func (c *Cache) Delete(ctx context.Context, key string) {
	c.store.Delete(ctx, namespaceKey(key))
}

// GetJSON retrieves and unmarshals the value stored under key into v.
// A malformed stored value counts as a miss.
func (c *Cache) GetJSON(ctx context.Context, key string, v interface{}) bool {
	raw, ok := c.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		c.logger.Warn("Dropping undecodable cache entry", zap.String("key", key), zap.Error(err))
		c.Delete(ctx, key)
		return false
	}
	return true
}

// SetJSON marshals v and stores it under key with the configured TTL. The
// stored snapshot is immutable: later mutation of v does not affect it.
func (c *Cache) SetJSON(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	c.Set(ctx, key, string(raw))
	return nil
}

// Clear drops every entry. Intended for tests.
func (c *Cache) Clear(ctx context.Context) {
	c.store.Clear(ctx)
}

// Close releases the backing store.
func (c *Cache) Close() error {
	return c.store.Close()
}

// Health checks the backing store.
func (c *Cache) Health(ctx context.Context) error {
	return c.store.Health(ctx)
}

// TTL returns the configured time-to-live.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Key builds a deterministic cache key from the operation name and every
// parameter that affects the result. Identical inputs produce byte-identical
// keys.
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

// HashKey builds an md5-hex key for parameter sets too long or too
// free-form to join directly (search queries).
func HashKey(parts ...string) string {
	h := md5.Sum([]byte(strings.Join(parts, ":")))
	return hex.EncodeToString(h[:])
}

// namespaceKey prefixes keys so a shared Redis can host other services.
func namespaceKey(key string) string {
	return "blogapi:" + key
}
