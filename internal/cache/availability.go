package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// AvailabilityCache keeps resolved slot lists hot for the booking widget.
// Every reservation or override write bumps the barber's version key, which
// orphans all cached entries for that barber; a stale "free" slot is never
// served past the TTL of a single version.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(addr string) *AvailabilityCache {
	if addr == "" {
		return nil
	}

	return &AvailabilityCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: 60 * time.Second,
	}
}

func (c *AvailabilityCache) version(ctx context.Context, barberID uint) int64 {
	v, err := c.rdb.Get(ctx, fmt.Sprintf("avail:ver:%d", barberID)).Int64()
	if err != nil && err != redis.Nil {
		return -1
	}
	return v
}

func (c *AvailabilityCache) key(barberID uint, ver int64, from, to string) string {
	return fmt.Sprintf("avail:%d:%d:%s:%s", barberID, ver, from, to)
}

// Get unmarshals a cached availability response into dest. A cache miss or
// any redis failure reports false; the caller recomputes.
func (c *AvailabilityCache) Get(ctx context.Context, barberID uint, from, to string, dest any) bool {
	if c == nil {
		return false
	}

	ver := c.version(ctx, barberID)
	if ver < 0 {
		return false
	}

	raw, err := c.rdb.Get(ctx, c.key(barberID, ver, from, to)).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(raw, dest) == nil
}

func (c *AvailabilityCache) Set(ctx context.Context, barberID uint, from, to string, value any) {
	if c == nil {
		return
	}

	ver := c.version(ctx, barberID)
	if ver < 0 {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, c.key(barberID, ver, from, to), raw, c.ttl).Err(); err != nil {
		log.Println("availability cache set:", err)
	}
}

// Invalidate bumps the barber's version so existing entries stop matching.
func (c *AvailabilityCache) Invalidate(ctx context.Context, barberID uint) {
	if c == nil {
		return
	}

	if err := c.rdb.Incr(ctx, fmt.Sprintf("avail:ver:%d", barberID)).Err(); err != nil {
		log.Println("availability cache invalidate:", err)
	}
}
