package domain

import "time"

// SolarPosition is the Sun's topocentric position for one instant and
// observer, after refraction correction. Azimuth is in [0, 360),
// altitude in [-90, 90], both degrees.
type SolarPosition struct {
	AzimuthDeg  float64
	AltitudeDeg float64
}

// EventOutcome classifies the result of a threshold-crossing search.
type EventOutcome int

const (
	// EventOccurs means the Sun crosses the threshold at EventResult.At.
	EventOccurs EventOutcome = iota

	// EventAlwaysAbove means the Sun stays above the threshold all day
	// (polar day with respect to that threshold).
	EventAlwaysAbove

	// EventAlwaysBelow means the Sun stays below the threshold all day
	// (polar night with respect to that threshold).
	EventAlwaysBelow
)

// String returns a stable identifier for the outcome.
func (o EventOutcome) String() string {
	switch o {
	case EventOccurs:
		return "occurs"
	case EventAlwaysAbove:
		return "always_above"
	case EventAlwaysBelow:
		return "always_below"
	default:
		return "unknown"
	}
}

// EventResult is the tagged result of an event search. Non-occurrence
// is a normal variant, never an error: At is only meaningful when
// Outcome is EventOccurs.
type EventResult struct {
	Outcome EventOutcome
	At      time.Time
}

// OccursAt builds an occurring event result.
func OccursAt(at time.Time) EventResult {
	return EventResult{Outcome: EventOccurs, At: at}
}

// NoEvent builds a non-occurring result with the given classification.
func NoEvent(outcome EventOutcome) EventResult {
	return EventResult{Outcome: outcome}
}

// Occurred reports whether the event happens.
func (r EventResult) Occurred() bool {
	return r.Outcome == EventOccurs
}

// InZone returns a pointer to the event instant rendered in loc, or nil
// when the event does not occur.
func (r EventResult) InZone(loc *time.Location) *time.Time {
	if !r.Occurred() {
		return nil
	}
	t := r.At.In(loc)
	return &t
}

// DayFlags carries the edge-case classification for one day's record.
type DayFlags struct {
	PolarDay               bool `json:"polar_day"`
	PolarNight             bool `json:"polar_night"`
	NoCivilTwilight        bool `json:"no_civil_twilight"`
	NoNauticalTwilight     bool `json:"no_nautical_twilight"`
	NoAstronomicalTwilight bool `json:"no_astronomical_twilight"`
}

// DayEventRecord is one UTC calendar day's sun events. Instants are
// rendered in the requested output zone; absent events are nil.
// The record is immutable once built.
type DayEventRecord struct {
	// Date is midnight UTC of the computed calendar day.
	Date time.Time

	SolarNoon time.Time

	Sunrise *time.Time
	Sunset  *time.Time

	CivilDawn        *time.Time
	CivilDusk        *time.Time
	NauticalDawn     *time.Time
	NauticalDusk     *time.Time
	AstronomicalDawn *time.Time
	AstronomicalDusk *time.Time

	// DayLengthSec is sunset minus sunrise in whole seconds.
	// 86400 for polar day, 0 for polar night.
	DayLengthSec int

	Flags DayFlags
}
