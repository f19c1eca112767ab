package driven

import (
	"context"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

// Geocoder resolves a structured place query to a coordinate.
// Implementations call an external service and are expected to apply
// their own rate limiting.
type Geocoder interface {
	// Search resolves the query to the best-matching place.
	// Returns an error wrapping domain.ErrGeocodingFailed when no
	// match exists or the provider is unreachable.
	Search(ctx context.Context, query domain.GeocodeQuery) (*domain.Place, error)
}
