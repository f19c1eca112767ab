package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// GeoCoordinate is an observer location on Earth.
// Latitude and longitude are in degrees, elevation in metres above sea level.
type GeoCoordinate struct {
	Lat        float64
	Lon        float64
	ElevationM float64
}

// NewGeoCoordinate creates a validated coordinate.
func NewGeoCoordinate(lat, lon, elevationM float64) (GeoCoordinate, error) {
	c := GeoCoordinate{Lat: lat, Lon: lon, ElevationM: elevationM}
	if err := c.Validate(); err != nil {
		return GeoCoordinate{}, err
	}
	return c, nil
}

// Validate checks that latitude, longitude and elevation are in range.
// This is the precondition gate: out-of-range values must never reach
// the astronomical core.
func (c GeoCoordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %g out of range [-90, 90]", ErrInvalidCoordinate, c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %g out of range [-180, 180]", ErrInvalidCoordinate, c.Lon)
	}
	if c.ElevationM < 0 {
		return fmt.Errorf("%w: elevation %gm is negative", ErrInvalidCoordinate, c.ElevationM)
	}
	return nil
}

// ParseLatLon parses a "lat,lon" string into a coordinate with zero elevation.
func ParseLatLon(s string) (GeoCoordinate, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return GeoCoordinate{}, fmt.Errorf("%w: GPS string must be \"lat,lon\"", ErrInvalidCoordinate)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return GeoCoordinate{}, fmt.Errorf("%w: bad latitude %q", ErrInvalidCoordinate, parts[0])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return GeoCoordinate{}, fmt.Errorf("%w: bad longitude %q", ErrInvalidCoordinate, parts[1])
	}

	return NewGeoCoordinate(lat, lon, 0)
}
