package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidCoordinate indicates a latitude, longitude or elevation
	// outside its documented range.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidDateRange indicates an end date before the start date.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrRangeTooLarge indicates a date range beyond the configured maximum.
	ErrRangeTooLarge = errors.New("date range too large")

	// ErrNoLocation indicates no usable location parameters were supplied.
	ErrNoLocation = errors.New("no valid location parameters")

	// ErrGeocodingFailed indicates the geocoding collaborator could not
	// resolve the query.
	ErrGeocodingFailed = errors.New("geocoding failed")

	// ErrTimezoneResolution indicates the time zone for a location could
	// not be determined.
	ErrTimezoneResolution = errors.New("timezone resolution failed")

	// ErrReferenceUnavailable indicates a cross-check reference provider
	// returned no usable data.
	ErrReferenceUnavailable = errors.New("reference data unavailable")

	// ErrToleranceExceeded indicates a cross-check delta beyond the
	// configured tolerance while enforcement is enabled.
	ErrToleranceExceeded = errors.New("cross-check tolerance exceeded")
)
