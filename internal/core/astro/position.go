package astro

import (
	"math"
	"time"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

// clamp keeps floating-point overshoot out of inverse-trig domains.
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Position computes the Sun's topocentric azimuth and refraction-
// corrected altitude for one instant and observer. Observer elevation
// does not enter here; it only affects the horizon-dip correction the
// daily calculator applies to the sunrise threshold.
func Position(at time.Time, coord domain.GeoCoordinate, cond domain.AtmosphericConditions) domain.SolarPosition {
	zenith, ha, decl := solarTriangle(at, coord)

	altitude := 90 - zenith
	altitude += RefractionCorrection(altitude, cond.PressureHPa, cond.TemperatureC)

	return domain.SolarPosition{
		AzimuthDeg:  azimuth(coord.Lat, decl, zenith, ha),
		AltitudeDeg: altitude,
	}
}

// GeometricAltitude returns the Sun's altitude in degrees without
// refraction. Event thresholds like -0.833° already fold standard
// refraction (plus the solar radius) into the target value, so the
// solver works against this quantity.
func GeometricAltitude(at time.Time, coord domain.GeoCoordinate) float64 {
	zenith, _, _ := solarTriangle(at, coord)
	return 90 - zenith
}

// solarTriangle solves the spherical triangle for one instant: zenith
// angle, hour angle and declination, all in degrees.
func solarTriangle(at time.Time, coord domain.GeoCoordinate) (zenith, ha, decl float64) {
	u := at.UTC()
	t := JulianCenturyAt(u)

	decl = Declination(t)
	eqTime := EquationOfTime(t)

	// True solar time in minutes of day: clock minutes plus the equation
	// of time plus 4 minutes per degree of longitude.
	clockMinutes := float64(u.Hour())*60 + float64(u.Minute()) + float64(u.Second())/60.0
	trueSolarTime := clockMinutes + eqTime + 4*coord.Lon

	// Hour angle in degrees, normalized into [-180, 180).
	ha = math.Mod(trueSolarTime/4.0-180.0, 360.0)
	if ha < -180 {
		ha += 360
	} else if ha >= 180 {
		ha -= 360
	}

	cosZenith := sinDeg(coord.Lat)*sinDeg(decl) + cosDeg(coord.Lat)*cosDeg(decl)*cosDeg(ha)
	zenith = rad2Deg(math.Acos(clamp(cosZenith, -1, 1)))
	return zenith, ha, decl
}

// azimuth solves the same spherical triangle for the compass bearing.
// The sign of the hour angle picks the morning or afternoon branch so
// the bearing sweeps monotonically through [0, 360).
func azimuth(lat, decl, zenith, ha float64) float64 {
	sinZenith := sinDeg(zenith)
	if sinZenith == 0 {
		// Sun at zenith or nadir: bearing is undefined, report north.
		return 0
	}

	cosAz := clamp((sinDeg(lat)*cosDeg(zenith)-sinDeg(decl))/(cosDeg(lat)*sinZenith), -1, 1)
	az := rad2Deg(math.Acos(cosAz))

	if ha > 0 {
		az += 180
	} else {
		az = 540 - az
	}
	return normalize360(az)
}
