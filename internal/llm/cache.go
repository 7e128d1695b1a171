package llm

import (
	"sync"
	"time"

	"github.com/snapledger/snapledger/internal/model"
)

// cacheEntry represents a cached structured record.
type cacheEntry struct {
	expiry time.Time
	record model.StructuredRecord
}

// recordCache provides thread-safe caching of validated records keyed by a
// hash of the OCR text. Identical input with a deterministic backend yields
// identical output, so caching preserves idempotence while saving calls.
type recordCache struct {
	entries map[string]cacheEntry
	stopCh  chan struct{}
	ttl     time.Duration
	mu      sync.RWMutex
}

// newRecordCache creates a new cache with the specified TTL.
func newRecordCache(ttl time.Duration) *recordCache {
	if ttl == 0 {
		ttl = 15 * time.Minute
	}

	cache := &recordCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		stopCh:  make(chan struct{}),
	}

	go cache.cleanup()

	return cache
}

// get retrieves a record from the cache if it exists and hasn't expired.
func (c *recordCache) get(key string) (model.StructuredRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[key]
	if !exists || time.Now().After(entry.expiry) {
		return model.StructuredRecord{}, false
	}

	return entry.record, true
}

// set stores a record in the cache.
func (c *recordCache) set(key string, record model.StructuredRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		record: record,
		expiry: time.Now().Add(c.ttl),
	}
}

// cleanup periodically removes expired entries.
func (c *recordCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now()
			for key, entry := range c.entries {
				if now.After(entry.expiry) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}

// stop terminates the cleanup goroutine.
func (c *recordCache) stop() {
	close(c.stopCh)
}
