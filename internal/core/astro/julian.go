package astro

import (
	"math"
	"time"
)

// J2000 epoch as a Julian Day: 2000-01-01 12:00 TT (treated as UTC at
// this accuracy class).
const j2000JulianDay = 2451545.0

// JulianDay converts an instant to a Julian Day number, with the time
// of day folded into the day fraction. Standard Gregorian algorithm
// with the January/February roll-back.
func JulianDay(t time.Time) float64 {
	u := t.UTC()
	year, month, d := u.Date()
	day := float64(d) +
		float64(u.Hour())/24.0 +
		float64(u.Minute())/1440.0 +
		(float64(u.Second())+float64(u.Nanosecond())/1e9)/86400.0

	y := float64(year)
	m := float64(month)
	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100.0)
	b := 2 - a + math.Floor(a/4.0)

	return math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + day + b - 1524.5
}

// JulianCentury converts a Julian Day to centuries since J2000.0, the
// parameter of every ephemeris polynomial.
func JulianCentury(jd float64) float64 {
	return (jd - j2000JulianDay) / 36525.0
}

// JulianCenturyAt is shorthand for JulianCentury(JulianDay(t)).
func JulianCenturyAt(t time.Time) float64 {
	return JulianCentury(JulianDay(t))
}

// CalendarDate inverts JulianDay back to a UTC instant. The round trip
// is exact to floating-point precision at day granularity; sub-second
// noise can appear in the time of day. Nothing in the calculators needs
// the inverse; it exists so the round-trip guarantee stays testable.
func CalendarDate(jd float64) time.Time {
	z := math.Floor(jd + 0.5)
	f := jd + 0.5 - z

	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := b - d - math.Floor(30.6001*e) + f

	month := e - 1
	if e >= 14 {
		month = e - 13
	}
	year := c - 4716
	if month <= 2 {
		year = c - 4715
	}

	dayInt, dayFrac := math.Modf(day)
	sec := dayFrac * 86400.0

	return time.Date(int(year), time.Month(month), int(dayInt), 0, 0, 0, 0, time.UTC).
		Add(time.Duration(math.Round(sec * float64(time.Second))))
}
