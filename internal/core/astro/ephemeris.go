package astro

import "math"

// Degree-based trig helpers. The ephemeris works in degrees throughout;
// radians appear only at these boundaries.

func deg2Rad(d float64) float64 { return d * math.Pi / 180.0 }

func rad2Deg(r float64) float64 { return r * 180.0 / math.Pi }

func sinDeg(d float64) float64 { return math.Sin(deg2Rad(d)) }

func cosDeg(d float64) float64 { return math.Cos(deg2Rad(d)) }

func tanDeg(d float64) float64 { return math.Tan(deg2Rad(d)) }

// normalize360 reduces an angle into [0, 360).
func normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// GeometricMeanLongitude returns the Sun's geometric mean longitude in
// degrees, reduced into [0, 360).
func GeometricMeanLongitude(t float64) float64 {
	l0 := 280.46646 + t*(36000.76983+t*0.0003032)
	return normalize360(l0)
}

// GeometricMeanAnomaly returns the Sun's geometric mean anomaly in
// degrees (not reduced).
func GeometricMeanAnomaly(t float64) float64 {
	return 357.52911 + t*(35999.05029-0.0001537*t)
}

// OrbitalEccentricity returns the eccentricity of Earth's orbit
// (dimensionless, about 0.0167).
func OrbitalEccentricity(t float64) float64 {
	return 0.016708634 - t*(0.000042037+0.0000001267*t)
}

// EquationOfCenter returns the Sun's equation of center in degrees,
// a three-harmonic series in the mean anomaly.
func EquationOfCenter(t float64) float64 {
	m := deg2Rad(GeometricMeanAnomaly(t))
	return math.Sin(m)*(1.914602-t*(0.004817+0.000014*t)) +
		math.Sin(2*m)*(0.019993-0.000101*t) +
		math.Sin(3*m)*0.000289
}

// TrueLongitude is the mean longitude corrected by the equation of
// center, in degrees.
func TrueLongitude(t float64) float64 {
	return GeometricMeanLongitude(t) + EquationOfCenter(t)
}

// ApparentLongitude corrects the true longitude for nutation and
// aberration via the longitude of the ascending node, in degrees.
func ApparentLongitude(t float64) float64 {
	omega := 125.04 - 1934.136*t
	return TrueLongitude(t) - 0.00569 - 0.00478*sinDeg(omega)
}

// MeanObliquity returns the mean obliquity of the ecliptic in degrees.
func MeanObliquity(t float64) float64 {
	seconds := 21.448 - t*(46.8150+t*(0.00059-t*0.001813))
	return 23.0 + (26.0+seconds/60.0)/60.0
}

// ObliquityCorrection returns the obliquity corrected for nutation, in
// degrees.
func ObliquityCorrection(t float64) float64 {
	omega := 125.04 - 1934.136*t
	return MeanObliquity(t) + 0.00256*cosDeg(omega)
}

// Declination returns the Sun's declination in degrees.
func Declination(t float64) float64 {
	e := ObliquityCorrection(t)
	lambda := ApparentLongitude(t)
	return rad2Deg(math.Asin(sinDeg(e) * sinDeg(lambda)))
}

// EquationOfTime returns apparent minus mean solar time in MINUTES of
// clock time. This is the one minutes-valued quantity in the ephemeris;
// everything else is degrees.
func EquationOfTime(t float64) float64 {
	epsilon := ObliquityCorrection(t)
	l0 := GeometricMeanLongitude(t)
	e := OrbitalEccentricity(t)
	m := GeometricMeanAnomaly(t)

	y := tanDeg(epsilon / 2.0)
	y *= y

	sin2l0 := sinDeg(2 * l0)
	sinm := sinDeg(m)
	cos2l0 := cosDeg(2 * l0)
	sin4l0 := sinDeg(4 * l0)
	sin2m := sinDeg(2 * m)

	etime := y*sin2l0 - 2.0*e*sinm + 4.0*e*y*sinm*cos2l0 -
		0.5*y*y*sin4l0 - 1.25*e*e*sin2m

	// Radians of hour angle to minutes: 4 clock minutes per degree.
	return rad2Deg(etime) * 4.0
}
