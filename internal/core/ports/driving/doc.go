// Package driving defines the interfaces that external actors use to
// drive the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI and HTTP adapters depend on these interfaces, and core
// services implement them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driving
