package domain

import "time"

// SunResult is the outcome of a calculation request: the resolved
// coordinate and output zone plus one record per requested day.
type SunResult struct {
	Coordinate GeoCoordinate

	// Zone is the resolved output zone; ZoneName is its IANA or
	// fixed-offset name for display.
	Zone     *time.Location
	ZoneName string

	Days []DayEventRecord
}
