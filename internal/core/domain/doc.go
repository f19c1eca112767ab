// Package domain contains the value types of the sun event calculator:
// coordinates, observing conditions, altitude thresholds, event results
// and day records. Everything here is immutable after construction and
// free of I/O; infrastructure concerns live in the adapters.
package domain
