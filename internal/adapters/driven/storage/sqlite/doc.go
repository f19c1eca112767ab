// Package sqlite provides the persistent geocode cache. Geocoding the
// same place twice within the TTL costs one upstream request instead of
// two, which matters against the rate-limited public Nominatim.
package sqlite
