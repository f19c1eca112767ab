package services

import (
	"context"
	"fmt"

	"github.com/helio-labs/heliotime/internal/core/domain"
	"github.com/helio-labs/heliotime/internal/core/ports/driven"
	"github.com/helio-labs/heliotime/internal/core/ports/driving"
)

// Ensure LocationService implements the interface.
var _ driving.LocationResolver = (*LocationService)(nil)

// LocationService resolves location inputs to coordinates, geocoding
// through a cache when no direct coordinates are supplied.
type LocationService struct {
	geocoder driven.Geocoder
	cache    driven.GeocodeCache
}

// NewLocationService creates a new location service. Both collaborators
// may be nil: without a geocoder only coordinate inputs resolve, and
// without a cache every lookup hits the geocoder.
func NewLocationService(geocoder driven.Geocoder, cache driven.GeocodeCache) *LocationService {
	return &LocationService{
		geocoder: geocoder,
		cache:    cache,
	}
}

// Resolve implements driving.LocationResolver.
func (s *LocationService) Resolve(ctx context.Context, input domain.LocationInput) (domain.GeoCoordinate, error) {
	// Direct coordinates win over every other form.
	if input.Lat != nil && input.Lon != nil {
		coord := domain.GeoCoordinate{Lat: *input.Lat, Lon: *input.Lon, ElevationM: input.ElevationM}
		if err := coord.Validate(); err != nil {
			return domain.GeoCoordinate{}, err
		}
		return coord, nil
	}

	if input.GPS != "" {
		coord, err := domain.ParseLatLon(input.GPS)
		if err != nil {
			return domain.GeoCoordinate{}, fmt.Errorf("parsing gps input: %w", err)
		}
		coord.ElevationM = input.ElevationM
		return coord, nil
	}

	query := domain.GeocodeQuery{
		PostalCode:  input.PostalCode,
		CountryCode: input.CountryCode,
		City:        input.City,
		Country:     input.Country,
	}
	if err := query.Validate(); err != nil {
		return domain.GeoCoordinate{}, err
	}
	if s.geocoder == nil {
		return domain.GeoCoordinate{}, fmt.Errorf("no geocoder configured: %w", domain.ErrGeocodingFailed)
	}

	place, err := s.lookup(ctx, query)
	if err != nil {
		return domain.GeoCoordinate{}, err
	}

	coord := place.Coordinate
	if input.ElevationM != 0 {
		// Caller-supplied elevation overrides whatever the geocoder knew.
		coord.ElevationM = input.ElevationM
	}
	return coord, nil
}

// lookup consults the cache first and writes through on miss. Cache
// failures degrade to a direct geocoder call.
func (s *LocationService) lookup(ctx context.Context, query domain.GeocodeQuery) (*domain.Place, error) {
	key := query.CacheKey()

	if s.cache != nil {
		if place, ok, err := s.cache.Get(ctx, key); err == nil && ok {
			return place, nil
		}
	}

	place, err := s.geocoder.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", key, err)
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, key, place); err != nil {
			return nil, fmt.Errorf("caching geocode result: %w", err)
		}
	}
	return place, nil
}
