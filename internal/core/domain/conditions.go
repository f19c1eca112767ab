package domain

// Standard atmosphere defaults used when the caller supplies none.
const (
	DefaultPressureHPa  = 1013.25
	DefaultTemperatureC = 15.0
)

// AtmosphericConditions holds the observing conditions that affect
// refraction. They have no effect on the geometric solar position.
type AtmosphericConditions struct {
	PressureHPa  float64
	TemperatureC float64
}

// DefaultConditions returns the standard atmosphere.
func DefaultConditions() AtmosphericConditions {
	return AtmosphericConditions{
		PressureHPa:  DefaultPressureHPa,
		TemperatureC: DefaultTemperatureC,
	}
}

// OrDefaults substitutes the standard atmosphere for the zero value.
// Zero pressure is not a physical observing condition, so a zero struct
// is treated as "unset"; a set pressure with 0°C temperature is kept.
func (a AtmosphericConditions) OrDefaults() AtmosphericConditions {
	if a == (AtmosphericConditions{}) {
		return DefaultConditions()
	}
	if a.PressureHPa == 0 {
		a.PressureHPa = DefaultPressureHPa
	}
	return a
}
