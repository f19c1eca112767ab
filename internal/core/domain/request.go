package domain

import (
	"fmt"
	"time"
)

// DefaultMaxRangeDays bounds multi-day requests unless overridden by
// configuration.
const DefaultMaxRangeDays = 366

// Request is a calculation request with an already-resolved coordinate.
// The output zone is carried separately: callers pass the zone name to
// the calculator, which resolves it through the timezone port.
type Request struct {
	Coordinate GeoCoordinate

	// Start and End are inclusive UTC calendar dates.
	Start time.Time
	End   time.Time

	Conditions          AtmosphericConditions
	ElevationCorrection bool
	IncludeTwilight     bool
}

// Days returns the number of calendar days covered, inclusive.
func (r Request) Days() int {
	start := midnightUTC(r.Start)
	end := midnightUTC(r.End)
	return int(end.Sub(start).Hours()/24) + 1
}

// Validate checks the coordinate and the date range against the given
// maximum length (<= 0 means DefaultMaxRangeDays).
func (r Request) Validate(maxRangeDays int) error {
	if err := r.Coordinate.Validate(); err != nil {
		return err
	}
	if maxRangeDays <= 0 {
		maxRangeDays = DefaultMaxRangeDays
	}

	days := r.Days()
	if days < 1 {
		return fmt.Errorf("%w: end date before start date", ErrInvalidDateRange)
	}
	if days > maxRangeDays {
		return fmt.Errorf("%w: %d days requested, maximum is %d", ErrRangeTooLarge, days, maxRangeDays)
	}
	return nil
}

// PositionRequest asks for the solar position at one instant.
type PositionRequest struct {
	Coordinate GeoCoordinate
	At         time.Time
	Conditions AtmosphericConditions
}

// Validate checks the coordinate and that an instant was given.
func (r PositionRequest) Validate() error {
	if err := r.Coordinate.Validate(); err != nil {
		return err
	}
	if r.At.IsZero() {
		return fmt.Errorf("%w: missing instant", ErrInvalidDateRange)
	}
	return nil
}

// midnightUTC truncates an instant to the start of its UTC calendar day.
func midnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
