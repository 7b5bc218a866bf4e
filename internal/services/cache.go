package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/tastecraft/tastecraft-api/internal/models"
)

// resultCache memoizes generation results per (country, style, kind,
// model) for the session. Latency and cost optimization only - entries
// simply expire after the TTL, no eviction beyond that is needed at the
// expected request volume.
type resultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func cacheKey(req models.GenerationRequest, model string) string {
	return fmt.Sprintf("%s|%s|%s|%s", req.Country, req.Style, req.Kind, model)
}

func (c *resultCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

func (c *resultCache) put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}
