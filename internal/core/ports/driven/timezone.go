package driven

import (
	"time"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

// TimezoneResolver turns a requested zone name and a coordinate into a
// concrete *time.Location for rendering output instants.
type TimezoneResolver interface {
	// Resolve loads the named IANA zone when name is non-empty;
	// otherwise it derives a fixed-offset zone from the coordinate's
	// longitude. Returns an error wrapping domain.ErrTimezoneResolution
	// when the name is unknown.
	Resolve(name string, coord domain.GeoCoordinate) (*time.Location, error)
}
