// Package connectors groups the HTTP clients for external services:
// nominatim for forward geocoding and the openmeteo/sunrisesunset
// reference providers used by the development cross-check.
//
// Connectors implement driven ports and own their transport policy
// (timeouts, rate limiting, user agents). Core code never sees an
// http.Client.
package connectors
