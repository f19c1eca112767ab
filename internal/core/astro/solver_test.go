package astro

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

func TestFindCrossing_LondonSunriseSunset(t *testing.T) {
	day := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	rise := FindCrossing(day, london, domain.HorizonAltitudeDeg, domain.Rising)
	require.True(t, rise.Occurred())
	set := FindCrossing(day, london, domain.HorizonAltitudeDeg, domain.Setting)
	require.True(t, set.Occurred())

	// Reference tables put this sunrise at 05:13 UTC and sunset at 18:46 UTC.
	assert.WithinDuration(t, time.Date(2025, time.September, 1, 5, 13, 0, 0, time.UTC), rise.At, 5*time.Minute)
	assert.WithinDuration(t, time.Date(2025, time.September, 1, 18, 46, 0, 0, time.UTC), set.At, 5*time.Minute)
	assert.True(t, rise.At.Before(set.At))
}

func TestFindCrossing_ConvergenceContract(t *testing.T) {
	// At every found event the altitude matches the threshold to well
	// under a hundredth of a degree.
	cases := []struct {
		coord     domain.GeoCoordinate
		date      time.Time
		threshold float64
	}{
		{london, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), domain.HorizonAltitudeDeg},
		{london, time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC), domain.CivilAltitudeDeg},
		{equator, time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC), domain.HorizonAltitudeDeg},
		{equator, time.Date(2025, time.December, 21, 0, 0, 0, 0, time.UTC), domain.NauticalAltitudeDeg},
		{longyearbyen, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), domain.HorizonAltitudeDeg},
	}

	for _, tc := range cases {
		for _, dir := range []domain.Direction{domain.Rising, domain.Setting} {
			res := FindCrossing(tc.date, tc.coord, tc.threshold, dir)
			require.True(t, res.Occurred(), "%v %s at %g", tc.coord, dir, tc.threshold)

			alt := GeometricAltitude(res.At, tc.coord)
			assert.Less(t, math.Abs(alt-tc.threshold), 0.01,
				"altitude %g at %s for threshold %g (%s)", alt, res.At, tc.threshold, dir)
		}
	}
}

func TestFindCrossing_PolarDayAndNight(t *testing.T) {
	midsummer := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	midwinter := time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC)

	rise := FindCrossing(midsummer, longyearbyen, domain.HorizonAltitudeDeg, domain.Rising)
	assert.Equal(t, domain.EventAlwaysAbove, rise.Outcome)

	set := FindCrossing(midwinter, longyearbyen, domain.HorizonAltitudeDeg, domain.Setting)
	assert.Equal(t, domain.EventAlwaysBelow, set.Outcome)

	// Midwinter civil twilight is also missing: the Sun peaks below -6°.
	dawn := FindCrossing(midwinter, longyearbyen, domain.CivilAltitudeDeg, domain.Rising)
	assert.Equal(t, domain.EventAlwaysBelow, dawn.Outcome)
}

func TestFindCrossing_DayRolloverNearAntimeridian(t *testing.T) {
	// Just west of the antimeridian local sunrise falls on the previous
	// UTC calendar day; the minutes-of-day underflow must roll the date.
	coord := domain.GeoCoordinate{Lat: 0, Lon: -179.5}
	day := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	rise := FindCrossing(day, coord, domain.HorizonAltitudeDeg, domain.Rising)
	require.True(t, rise.Occurred())
	assert.True(t, rise.At.Before(day), "expected rollover to previous UTC day, got %s", rise.At)

	alt := GeometricAltitude(rise.At, coord)
	assert.Less(t, math.Abs(alt-domain.HorizonAltitudeDeg), 0.01)
}

func TestSolarNoon_London(t *testing.T) {
	noon := SolarNoon(time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), london)

	// Longitude and equation of time are both near zero: solar noon
	// lands close to 12:00 UTC.
	assert.WithinDuration(t, time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC), noon, 10*time.Minute)
}

func TestSolarNoon_LongitudeOffset(t *testing.T) {
	// 15.6°E shifts solar noon about an hour before 12:00 UTC.
	noon := SolarNoon(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), longyearbyen)
	assert.WithinDuration(t, time.Date(2025, time.June, 15, 11, 0, 0, 0, time.UTC), noon, 15*time.Minute)
}

func TestSolarNoon_IsLocalMaximum(t *testing.T) {
	// Hill-climb stopping condition: the noon altitude beats both
	// one-minute neighbours everywhere.
	dates := []time.Time{
		time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		for _, coord := range []domain.GeoCoordinate{london, equator, longyearbyen} {
			noon := SolarNoon(d, coord)
			alt := GeometricAltitude(noon, coord)
			assert.GreaterOrEqual(t, alt, GeometricAltitude(noon.Add(-time.Minute), coord))
			assert.GreaterOrEqual(t, alt, GeometricAltitude(noon.Add(time.Minute), coord))
		}
	}
}
