package astro

import (
	"time"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

// Options configures a daily calculation. The zero value means no
// elevation correction, no twilight, UTC output. Atmospheric conditions
// do not appear here: they affect only refraction in Position queries,
// while event thresholds carry the standard refraction convention in
// their target values.
type Options struct {
	// ElevationCorrection lowers the sunrise/sunset threshold by the
	// horizon dip for the observer's elevation. Twilight thresholds are
	// never dip-corrected.
	ElevationCorrection bool

	IncludeTwilight bool

	// Zone renders the output instants; nil means UTC. The search
	// window is always the UTC calendar day regardless of zone.
	Zone *time.Location
}

func (o Options) zone() *time.Location {
	if o.Zone == nil {
		return time.UTC
	}
	return o.Zone
}

// DayEvents computes one UTC calendar day's record: solar noon,
// sunrise/sunset with polar classification, day length and, when
// requested, the three twilight bands.
func DayEvents(date time.Time, coord domain.GeoCoordinate, opts Options) domain.DayEventRecord {
	day := startOfUTCDay(date)
	loc := opts.zone()

	rec := domain.DayEventRecord{Date: day}

	noon := SolarNoon(day, coord)
	rec.SolarNoon = noon.In(loc)
	noonAlt := GeometricAltitude(noon, coord)

	threshold := domain.ThresholdSunrise
	if opts.ElevationCorrection {
		threshold = threshold.WithHorizonDip(coord.ElevationM)
	}

	rise := FindCrossing(day, coord, threshold.AltitudeDeg, domain.Rising)
	set := FindCrossing(day, coord, threshold.AltitudeDeg, domain.Setting)

	switch {
	case !rise.Occurred() && !set.Occurred():
		// Classify by the altitude at solar noon: above the threshold
		// the sun never sets, below it never rises.
		if noonAlt > threshold.AltitudeDeg {
			rec.Flags.PolarDay = true
			rec.DayLengthSec = 86400
		} else {
			rec.Flags.PolarNight = true
		}
	default:
		rec.Sunrise = rise.InZone(loc)
		rec.Sunset = set.InZone(loc)
		if rise.Occurred() && set.Occurred() {
			rec.DayLengthSec = int(set.At.Sub(rise.At).Seconds())
		}
	}

	if opts.IncludeTwilight {
		solveTwilight(day, coord, loc, &rec)
	}

	return rec
}

// solveTwilight fills the dawn/dusk pairs for the three twilight bands
// and raises the matching flag when either edge of a band is missing.
func solveTwilight(day time.Time, coord domain.GeoCoordinate,
	loc *time.Location, rec *domain.DayEventRecord) {

	bands := []struct {
		threshold domain.Threshold
		dawn      **time.Time
		dusk      **time.Time
		flag      *bool
	}{
		{domain.ThresholdCivil, &rec.CivilDawn, &rec.CivilDusk, &rec.Flags.NoCivilTwilight},
		{domain.ThresholdNautical, &rec.NauticalDawn, &rec.NauticalDusk, &rec.Flags.NoNauticalTwilight},
		{domain.ThresholdAstronomical, &rec.AstronomicalDawn, &rec.AstronomicalDusk, &rec.Flags.NoAstronomicalTwilight},
	}

	for _, band := range bands {
		dawn := FindCrossing(day, coord, band.threshold.AltitudeDeg, domain.Rising)
		dusk := FindCrossing(day, coord, band.threshold.AltitudeDeg, domain.Setting)

		*band.dawn = dawn.InZone(loc)
		*band.dusk = dusk.InZone(loc)
		if !dawn.Occurred() || !dusk.Occurred() {
			*band.flag = true
		}
	}
}
