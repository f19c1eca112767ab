package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

func TestDayEvents_LondonSeptember(t *testing.T) {
	zone, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	rec := DayEvents(time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), london,
		Options{IncludeTwilight: true, Zone: zone})

	require.NotNil(t, rec.Sunrise)
	require.NotNil(t, rec.Sunset)
	assert.False(t, rec.Flags.PolarDay)
	assert.False(t, rec.Flags.PolarNight)

	// BST: sunrise a bit after 06:00, sunset towards 20:00 local.
	assert.Equal(t, 6, rec.Sunrise.Hour())
	assert.Equal(t, 19, rec.Sunset.Hour())
	assert.GreaterOrEqual(t, rec.Sunset.Minute(), 30)

	// Thirteen and a half hours of daylight, give or take.
	assert.Greater(t, rec.DayLengthSec, 13*3600)
	assert.Less(t, rec.DayLengthSec, 14*3600)

	// All three twilight bands exist at this latitude in September.
	require.NotNil(t, rec.CivilDawn)
	require.NotNil(t, rec.CivilDusk)
	require.NotNil(t, rec.NauticalDawn)
	require.NotNil(t, rec.NauticalDusk)
	require.NotNil(t, rec.AstronomicalDawn)
	require.NotNil(t, rec.AstronomicalDusk)

	// Ordering: astro dawn < nautical dawn < civil dawn < sunrise.
	assert.True(t, rec.AstronomicalDawn.Before(*rec.NauticalDawn))
	assert.True(t, rec.NauticalDawn.Before(*rec.CivilDawn))
	assert.True(t, rec.CivilDawn.Before(*rec.Sunrise))
	assert.True(t, rec.Sunset.Before(*rec.CivilDusk))

	// Instants render in the requested zone.
	assert.Equal(t, zone, rec.SolarNoon.Location())
}

func TestDayEvents_EquatorEquinox(t *testing.T) {
	rec := DayEvents(time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC), equator, Options{})

	require.NotNil(t, rec.Sunrise)
	require.NotNil(t, rec.Sunset)

	// The -0.833° threshold stretches the equatorial day a few minutes
	// past twelve hours.
	assert.Greater(t, rec.DayLengthSec, 12*3600)
	assert.Less(t, rec.DayLengthSec, 12*3600+10*60)
}

func TestDayEvents_PolarDay(t *testing.T) {
	rec := DayEvents(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), longyearbyen,
		Options{IncludeTwilight: true})

	assert.True(t, rec.Flags.PolarDay)
	assert.False(t, rec.Flags.PolarNight)
	assert.Nil(t, rec.Sunrise)
	assert.Nil(t, rec.Sunset)
	assert.Equal(t, 86400, rec.DayLengthSec)

	// The Sun never dips below the horizon, so no twilight band exists.
	assert.True(t, rec.Flags.NoCivilTwilight)
	assert.True(t, rec.Flags.NoNauticalTwilight)
	assert.True(t, rec.Flags.NoAstronomicalTwilight)
	assert.Nil(t, rec.CivilDawn)

	// Solar noon is still reported.
	assert.False(t, rec.SolarNoon.IsZero())
}

func TestDayEvents_PolarNight(t *testing.T) {
	rec := DayEvents(time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC), longyearbyen,
		Options{IncludeTwilight: true})

	assert.True(t, rec.Flags.PolarNight)
	assert.False(t, rec.Flags.PolarDay)
	assert.Nil(t, rec.Sunrise)
	assert.Nil(t, rec.Sunset)
	assert.Equal(t, 0, rec.DayLengthSec)

	// Midwinter Svalbard: the Sun peaks near -11.5°, so civil twilight
	// is missing but nautical and astronomical twilight still occur.
	assert.True(t, rec.Flags.NoCivilTwilight)
	assert.False(t, rec.Flags.NoNauticalTwilight)
	assert.False(t, rec.Flags.NoAstronomicalTwilight)
	require.NotNil(t, rec.NauticalDawn)
	require.NotNil(t, rec.NauticalDusk)
}

func TestDayEvents_NoAstronomicalTwilightInLondonJune(t *testing.T) {
	rec := DayEvents(time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC), london,
		Options{IncludeTwilight: true})

	// At 51.5°N the midsummer Sun only reaches about -15° at its lowest:
	// astronomical twilight never ends, the other bands do occur.
	assert.True(t, rec.Flags.NoAstronomicalTwilight)
	assert.Nil(t, rec.AstronomicalDawn)
	assert.False(t, rec.Flags.NoCivilTwilight)
	assert.False(t, rec.Flags.NoNauticalTwilight)
	require.NotNil(t, rec.Sunrise)
}

func TestDayEvents_ElevationCorrection(t *testing.T) {
	peak := domain.GeoCoordinate{Lat: 46.0, Lon: 7.5, ElevationM: 2000}
	date := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	corrected := DayEvents(date, peak, Options{ElevationCorrection: true})
	uncorrected := DayEvents(date, peak, Options{})

	require.NotNil(t, corrected.Sunrise)
	require.NotNil(t, uncorrected.Sunrise)

	// A dipped horizon means earlier sunrise, later sunset, longer day.
	assert.True(t, corrected.Sunrise.Before(*uncorrected.Sunrise))
	assert.True(t, corrected.Sunset.After(*uncorrected.Sunset))
	assert.Greater(t, corrected.DayLengthSec, uncorrected.DayLengthSec)
}

func TestDayEvents_NoTwilightWhenNotRequested(t *testing.T) {
	rec := DayEvents(time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), london, Options{})

	assert.Nil(t, rec.CivilDawn)
	assert.Nil(t, rec.NauticalDawn)
	assert.Nil(t, rec.AstronomicalDawn)
	assert.False(t, rec.Flags.NoCivilTwilight)
}

func TestDayEvents_DateIsUTCDay(t *testing.T) {
	zone, err := time.LoadLocation("Pacific/Auckland")
	require.NoError(t, err)

	// The search window is the UTC day even when the output zone is far
	// ahead of UTC.
	rec := DayEvents(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		domain.GeoCoordinate{Lat: -36.85, Lon: 174.76}, Options{Zone: zone})

	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), rec.Date)
	require.NotNil(t, rec.Sunrise)
	assert.Equal(t, zone, rec.Sunrise.Location())
}
