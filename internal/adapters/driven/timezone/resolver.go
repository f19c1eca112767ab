package timezone

import (
	"fmt"
	"math"
	"time"

	"github.com/helio-labs/heliotime/internal/core/domain"
	"github.com/helio-labs/heliotime/internal/core/ports/driven"
)

// Ensure Resolver implements the interface.
var _ driven.TimezoneResolver = (*Resolver)(nil)

// Resolver resolves output zones from the system tz database. Without
// an explicit name it falls back to a fixed-offset Etc/GMT zone derived
// from longitude, which ignores political boundaries but is always
// within half an hour of mean solar time.
type Resolver struct{}

// New creates a timezone resolver.
func New() *Resolver {
	return &Resolver{}
}

// Resolve implements driven.TimezoneResolver.
func (r *Resolver) Resolve(name string, coord domain.GeoCoordinate) (*time.Location, error) {
	if name != "" {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown zone %q", domain.ErrTimezoneResolution, name)
		}
		return loc, nil
	}

	offset := int(math.Round(coord.Lon / 15))
	if offset == 0 {
		return time.UTC, nil
	}

	// The Etc/GMT names carry inverted signs: Etc/GMT-2 is UTC+2.
	zone := fmt.Sprintf("Etc/GMT+%d", -offset)
	if offset > 0 {
		zone = fmt.Sprintf("Etc/GMT-%d", offset)
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("%w: loading fallback zone %q", domain.ErrTimezoneResolution, zone)
	}
	return loc, nil
}
