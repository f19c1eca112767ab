// Package astro implements the solar position and event finding engine.
//
// It follows the simplified NOAA/Meeus solar position method: low-order
// polynomial ephemeris in Julian centuries, a closed-form equation of
// time, refraction-corrected topocentric altitude/azimuth, and an
// analytic sunrise-equation estimate refined by a bounded secant
// iteration. Accuracy is at the arc-minute level, which keeps event
// times within about a minute of reference tables.
//
// Every function here is pure: no state, no I/O, total over validated
// inputs. Non-occurrence of an event (polar day or night) is a normal
// result variant, not an error.
package astro
