package domain

import (
	"fmt"
	"strings"
)

// GeocodeQuery is a structured forward-geocoding request. Exactly one of
// the two forms must be populated: postal code + country code, or city
// (optionally qualified by country).
type GeocodeQuery struct {
	PostalCode  string
	CountryCode string
	City        string
	Country     string
}

// Validate checks that the query names a resolvable place.
func (q GeocodeQuery) Validate() error {
	switch {
	case q.PostalCode != "" && q.CountryCode == "":
		return fmt.Errorf("postal code requires a country code: %w", ErrNoLocation)
	case q.PostalCode == "" && q.City == "":
		return fmt.Errorf("no postal code or city given: %w", ErrNoLocation)
	}
	return nil
}

// CacheKey returns a normalized key identifying this query for cache
// lookups. Case and surrounding whitespace do not affect the key.
func (q GeocodeQuery) CacheKey() string {
	norm := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	if q.PostalCode != "" {
		return fmt.Sprintf("postal:%s:%s", norm(q.CountryCode), norm(q.PostalCode))
	}
	return fmt.Sprintf("city:%s:%s", norm(q.Country), norm(q.City))
}

// Place is a geocoding result: the resolved coordinate plus the
// provider's display name for diagnostics.
type Place struct {
	Coordinate  GeoCoordinate `json:"coordinate"`
	DisplayName string        `json:"display_name"`
}

// LocationInput collects every accepted way of naming a location.
// Precedence: explicit lat/lon, then a "lat,lon" GPS string, then
// postal code + country code, then city (+ country). ElevationM
// applies to whichever form wins.
type LocationInput struct {
	Lat *float64
	Lon *float64

	GPS string

	PostalCode  string
	CountryCode string

	City    string
	Country string

	ElevationM float64
}

// NeedsGeocoding reports whether resolving this input requires a
// geocoder call rather than direct coordinates.
func (in LocationInput) NeedsGeocoding() bool {
	return (in.Lat == nil || in.Lon == nil) && in.GPS == ""
}
