package memory

import (
	"context"
	"sync"
	"time"

	"github.com/helio-labs/heliotime/internal/core/domain"
	"github.com/helio-labs/heliotime/internal/core/ports/driven"
)

// Ensure GeocodeCache implements the interface.
var _ driven.GeocodeCache = (*GeocodeCache)(nil)

// GeocodeCache is an in-memory implementation of driven.GeocodeCache.
// Suitable for tests and single-run CLI use; entries do not survive the
// process.
type GeocodeCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration

	// now is swappable for expiry tests.
	now func() time.Time
}

type cacheEntry struct {
	place    domain.Place
	storedAt time.Time
}

// NewGeocodeCache creates a new in-memory geocode cache. ttl <= 0 means
// entries never expire.
func NewGeocodeCache(ttl time.Duration) *GeocodeCache {
	return &GeocodeCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get retrieves a cached place. Expired entries report a miss and are
// dropped.
func (c *GeocodeCache) Get(_ context.Context, key string) (*domain.Place, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if c.ttl > 0 && c.now().Sub(entry.storedAt) > c.ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}

	place := entry.place
	return &place, true, nil
}

// Put stores or replaces a cached place.
func (c *GeocodeCache) Put(_ context.Context, key string, place *domain.Place) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{place: *place, storedAt: c.now()}
	return nil
}

// Len returns the number of live entries, for diagnostics.
func (c *GeocodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
