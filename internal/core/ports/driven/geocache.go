package driven

import (
	"context"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

// GeocodeCache stores geocoding results keyed by the query's CacheKey.
// Entries may expire; an expired or missing entry reports ok=false.
type GeocodeCache interface {
	// Get retrieves a cached place. ok is false on miss or expiry.
	Get(ctx context.Context, key string) (place *domain.Place, ok bool, err error)

	// Put stores or replaces a cached place.
	Put(ctx context.Context, key string, place *domain.Place) error
}
