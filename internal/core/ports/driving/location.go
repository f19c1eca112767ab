package driving

import (
	"context"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

// LocationResolver turns any accepted location input form into a
// validated coordinate.
type LocationResolver interface {
	// Resolve applies the input precedence rules, geocoding (with
	// caching) when no direct coordinates are given.
	Resolve(ctx context.Context, input domain.LocationInput) (domain.GeoCoordinate, error)
}
