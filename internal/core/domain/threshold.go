package domain

import "math"

// Standard apparent-altitude thresholds in degrees. The sunrise value
// places the centre of the solar disk 0.833° below the horizon,
// accounting for refraction plus the Sun's apparent radius.
const (
	HorizonAltitudeDeg      = -0.833
	CivilAltitudeDeg        = -6.0
	NauticalAltitudeDeg     = -12.0
	AstronomicalAltitudeDeg = -18.0
)

// Direction states whether a crossing is sought with the Sun ascending
// (rise, dawn) or descending (set, dusk).
type Direction int

const (
	Rising Direction = iota
	Setting
)

// String returns "rising" or "setting".
func (d Direction) String() string {
	if d == Rising {
		return "rising"
	}
	return "setting"
}

// Threshold is a named target apparent altitude for event solving.
type Threshold struct {
	Name        string
	AltitudeDeg float64
}

// The six standard event thresholds.
var (
	ThresholdSunrise      = Threshold{Name: "sunrise", AltitudeDeg: HorizonAltitudeDeg}
	ThresholdCivil        = Threshold{Name: "civil", AltitudeDeg: CivilAltitudeDeg}
	ThresholdNautical     = Threshold{Name: "nautical", AltitudeDeg: NauticalAltitudeDeg}
	ThresholdAstronomical = Threshold{Name: "astronomical", AltitudeDeg: AstronomicalAltitudeDeg}
)

// HorizonDipDeg is the depression of the visible horizon for an
// observer elevated above sea level: 1.76·√h arcminutes.
func HorizonDipDeg(elevationM float64) float64 {
	if elevationM <= 0 {
		return 0
	}
	return 1.76 * math.Sqrt(elevationM) / 60.0
}

// WithHorizonDip lowers the threshold by the horizon dip for the given
// observer elevation.
func (t Threshold) WithHorizonDip(elevationM float64) Threshold {
	t.AltitudeDeg -= HorizonDipDeg(elevationM)
	return t
}
