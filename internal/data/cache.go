package data

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"energy-advisor/internal/model"
)

// resultEntry is one cached analysis result
type resultEntry struct {
	Result    *model.AnalysisResult
	ExpiresAt time.Time
}

// ResultCache keeps recent analysis results in memory so follow-up
// requests (per-appliance metrics, charts) can reference a run by ID
// instead of resubmitting the table. Entries expire after the TTL;
// nothing is persisted.
type ResultCache struct {
	mu    sync.RWMutex
	store map[string]*resultEntry
	ttl   time.Duration
}

// DefaultResultTTL bounds how long a run stays addressable.
const DefaultResultTTL = 1 * time.Hour

// NewResultCache creates a cache with the given TTL (DefaultResultTTL
// when ttl <= 0) and starts background expiry.
func NewResultCache(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultResultTTL
	}
	c := &ResultCache{
		store: make(map[string]*resultEntry),
		ttl:   ttl,
	}
	go c.cleanup()
	return c
}

// Put stores a result and returns its generated run ID.
func (c *ResultCache) Put(result *model.AnalysisResult) string {
	id := uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[id] = &resultEntry{
		Result:    result,
		ExpiresAt: time.Now().Add(c.ttl),
	}
	return id
}

// Get retrieves a cached result if available and not expired
func (c *ResultCache) Get(id string) (*model.AnalysisResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[id]
	if !exists {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Result, true
}

// Clear removes all entries from the cache
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*resultEntry)
}

// cleanup periodically removes expired entries
func (c *ResultCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for id, entry := range c.store {
			if now.After(entry.ExpiresAt) {
				delete(c.store, id)
			}
		}
		c.mu.Unlock()
	}
}
