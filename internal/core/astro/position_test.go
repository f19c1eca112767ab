package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

var (
	london       = domain.GeoCoordinate{Lat: 51.5074, Lon: -0.1278}
	equator      = domain.GeoCoordinate{Lat: 0, Lon: 0}
	longyearbyen = domain.GeoCoordinate{Lat: 78.2232, Lon: 15.6267}
)

func TestPosition_EquatorEquinoxNoon(t *testing.T) {
	// Near the March equinox the Sun passes almost overhead at the
	// equator around 12:00 UTC (longitude 0).
	at := time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)
	pos := Position(at, equator, domain.DefaultConditions())

	assert.Greater(t, pos.AltitudeDeg, 85.0)
	assert.GreaterOrEqual(t, pos.AzimuthDeg, 0.0)
	assert.Less(t, pos.AzimuthDeg, 360.0)
}

func TestPosition_LondonSummerNoon(t *testing.T) {
	// Upper culmination altitude is 90 - lat + decl, about 62° at the
	// June solstice.
	noon := SolarNoon(time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC), london)
	pos := Position(noon, london, domain.DefaultConditions())

	assert.InDelta(t, 61.9, pos.AltitudeDeg, 0.5)
	// Sun due south at solar noon.
	assert.InDelta(t, 180, pos.AzimuthDeg, 2.0)
}

func TestPosition_AzimuthBranches(t *testing.T) {
	day := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	morning := Position(day.Add(8*time.Hour), london, domain.DefaultConditions())
	afternoon := Position(day.Add(16*time.Hour), london, domain.DefaultConditions())

	// East of south in the morning, west of south in the afternoon.
	assert.Less(t, morning.AzimuthDeg, 180.0)
	assert.Greater(t, morning.AzimuthDeg, 0.0)
	assert.Greater(t, afternoon.AzimuthDeg, 180.0)
	assert.Less(t, afternoon.AzimuthDeg, 360.0)
}

func TestPosition_RefractionLiftsAltitude(t *testing.T) {
	// Close to the horizon the corrected altitude sits well above the
	// geometric one.
	at := time.Date(2025, time.September, 1, 5, 25, 0, 0, time.UTC) // shortly after London sunrise
	geom := GeometricAltitude(at, london)
	pos := Position(at, london, domain.DefaultConditions())

	assert.Greater(t, pos.AltitudeDeg, geom)
	assert.Less(t, pos.AltitudeDeg-geom, 1.5)
}

func TestGeometricAltitude_PolarScenarios(t *testing.T) {
	// Midsummer Svalbard: above the sunrise threshold even at UTC midnight.
	midsummer := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.Greater(t, GeometricAltitude(midsummer, longyearbyen), domain.HorizonAltitudeDeg)

	// Midwinter Svalbard: below the threshold even at solar noon.
	midwinterNoon := SolarNoon(time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC), longyearbyen)
	assert.Less(t, GeometricAltitude(midwinterNoon, longyearbyen), domain.HorizonAltitudeDeg)
}

func TestPosition_AltitudeWithinBounds(t *testing.T) {
	// Sampled broadly, altitude stays in [-90, 90] and azimuth in [0, 360).
	day := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)
	for hour := 0; hour < 24; hour += 2 {
		for _, coord := range []domain.GeoCoordinate{london, equator, longyearbyen} {
			pos := Position(day.Add(time.Duration(hour)*time.Hour), coord, domain.DefaultConditions())
			assert.GreaterOrEqual(t, pos.AltitudeDeg, -90.0)
			assert.LessOrEqual(t, pos.AltitudeDeg, 90.0)
			assert.GreaterOrEqual(t, pos.AzimuthDeg, 0.0)
			assert.Less(t, pos.AzimuthDeg, 360.0)
		}
	}
}
