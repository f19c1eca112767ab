package astro

import (
	"math"
	"time"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

// Solver tuning. The iteration counts bound the work per event to a
// small constant number of Position evaluations.
const (
	refineIterations = 5
	noonIterations   = 3

	// convergenceDeg stops refinement once the altitude error is
	// below a thousandth of a degree (well under a second of time).
	convergenceDeg = 0.001

	// minSlopeDegPerMin aborts refinement when the altitude barely
	// changes per minute, which would make the secant step blow up.
	minSlopeDegPerMin = 0.001
)

// FindCrossing locates the instant on the given UTC calendar day when
// the Sun crosses thresholdDeg in the requested direction. Polar
// non-occurrence comes back as a tagged result, never an error.
func FindCrossing(date time.Time, coord domain.GeoCoordinate,
	thresholdDeg float64, dir domain.Direction) domain.EventResult {

	day := startOfUTCDay(date)
	noon := day.Add(12 * time.Hour)
	t := JulianCenturyAt(noon)

	decl := Declination(t)

	// Sunrise equation: cos H at the threshold altitude.
	cosH := (sinDeg(thresholdDeg) - sinDeg(coord.Lat)*sinDeg(decl)) /
		(cosDeg(coord.Lat) * cosDeg(decl))

	if cosH < -1 {
		return domain.NoEvent(domain.EventAlwaysAbove)
	}
	if cosH > 1 {
		return domain.NoEvent(domain.EventAlwaysBelow)
	}

	h := rad2Deg(math.Acos(cosH))

	// Analytic first estimate in minutes of day. 720 is solar noon;
	// the time correction folds in the equation of time and longitude.
	timeCorrection := EquationOfTime(t) - 4*coord.Lon
	var minutes float64
	if dir == domain.Rising {
		minutes = 720 - 4*h - timeCorrection
	} else {
		minutes = 720 + 4*h - timeCorrection
	}

	// Adding the raw minutes rolls the calendar date on under/overflow.
	estimate := day.Add(minutesToDuration(minutes))

	return domain.OccursAt(refine(estimate, coord, thresholdDeg))
}

// refine walks the estimate toward the threshold crossing with a
// bounded secant iteration, sampling the altitude slope one minute
// ahead for the derivative. It works on the geometric altitude: the
// threshold value itself already carries the standard refraction
// convention, and the refraction formula is not continuous through the
// horizon, so chasing the corrected altitude would never settle.
func refine(estimate time.Time, coord domain.GeoCoordinate, thresholdDeg float64) time.Time {
	for i := 0; i < refineIterations; i++ {
		alt := GeometricAltitude(estimate, coord)
		diff := alt - thresholdDeg
		if math.Abs(diff) < convergenceDeg {
			break
		}

		altNext := GeometricAltitude(estimate.Add(time.Minute), coord)
		slope := altNext - alt // degrees per minute
		if math.Abs(slope) < minSlopeDegPerMin {
			break
		}

		estimate = estimate.Add(minutesToDuration(-diff / slope))
	}
	return estimate
}

// SolarNoon finds the instant of the Sun's highest altitude on the
// given UTC calendar day. A maximum exists every day, so unlike the
// crossing solver there is no non-occurrence case.
func SolarNoon(date time.Time, coord domain.GeoCoordinate) time.Time {
	day := startOfUTCDay(date)

	// Longitude shifts mean noon by 4 minutes per degree; the equation
	// of time shifts it by apparent-vs-mean solar time.
	noon := day.Add(12*time.Hour - minutesToDuration(4*coord.Lon))
	noon = noon.Add(-minutesToDuration(EquationOfTime(JulianCenturyAt(noon))))

	for i := 0; i < noonIterations; i++ {
		alt := GeometricAltitude(noon, coord)
		altBefore := GeometricAltitude(noon.Add(-time.Minute), coord)
		altAfter := GeometricAltitude(noon.Add(time.Minute), coord)

		if alt >= altBefore && alt >= altAfter {
			break
		}
		if altBefore > alt {
			noon = noon.Add(-time.Minute)
		} else {
			noon = noon.Add(time.Minute)
		}
	}
	return noon
}

func startOfUTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func minutesToDuration(min float64) time.Duration {
	return time.Duration(math.Round(min * float64(time.Minute)))
}
