package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	KeyCities      = "catalog:cities"
	KeyInstruments = "catalog:instruments"
	KeyStyles      = "catalog:styles"
)

// CatalogCache is a read-through cache for the reference catalog. Redis
// being down degrades every call to a miss; it never fails a request.
type CatalogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCatalogCache(addr string) *CatalogCache {
	return &CatalogCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: 10 * time.Minute,
	}
}

func (c *CatalogCache) Get(ctx context.Context, key string, dest any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("catalog cache read:", err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

func (c *CatalogCache) Set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Println("catalog cache write:", err)
	}
}

// Invalidate drops keys after an admin catalog write.
func (c *CatalogCache) Invalidate(ctx context.Context, keys ...string) {
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Println("catalog cache invalidate:", err)
	}
}
