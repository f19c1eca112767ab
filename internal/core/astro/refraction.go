package astro

// RefractionCorrection returns the atmospheric refraction correction in
// degrees to add to a geometric altitude, following Meeus. Above 85°
// the correction is negligible and zero is returned. Below -0.575° a
// cotangent form takes over, which stays finite as the altitude drops
// toward the nadir. The result scales with pressure and inverse
// absolute temperature.
//
// Callers must keep altitudeDeg inside (-90, 90]; at exactly -90° the
// cotangent is undefined.
func RefractionCorrection(altitudeDeg, pressureHPa, temperatureC float64) float64 {
	if altitudeDeg > 85 {
		return 0
	}

	pressureFactor := pressureHPa / 1010.0
	tempFactor := 283.0 / (temperatureC + 273.15)

	var arcmin float64
	if altitudeDeg > -0.575 {
		arcmin = 1.02 / tanDeg(altitudeDeg+10.3/(altitudeDeg+5.11))
	} else {
		arcmin = 1.0 / tanDeg(altitudeDeg)
	}

	return arcmin * pressureFactor * tempFactor / 60.0
}
