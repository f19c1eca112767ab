// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TimezoneResolver: IANA zone resolution with longitude fallback
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Geocoder: Forward geocoding. Without it, only lat/lon input works.
//   - GeocodeCache: Geocoding result cache. Without it, every lookup hits
//     the geocoder.
//   - ReferenceProvider: External sunrise/sunset source for the
//     development cross-check. Without it, cross-checking is disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
