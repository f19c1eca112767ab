package driven

import (
	"context"
	"time"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

// ReferenceProvider fetches sunrise/sunset for one UTC day from an
// external service, for cross-checking calculated results.
type ReferenceProvider interface {
	// Name identifies the provider in reports, e.g. "open-meteo".
	Name() string

	// Fetch returns the provider's times for the given coordinate and
	// UTC calendar day. Returns an error wrapping
	// domain.ErrReferenceUnavailable when the service cannot answer.
	Fetch(ctx context.Context, coord domain.GeoCoordinate, date time.Time) (*domain.ReferenceTimes, error)
}
