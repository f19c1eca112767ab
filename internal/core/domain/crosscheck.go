package domain

import "time"

// ReferenceTimes holds sunrise/sunset from an external reference
// provider. Either pointer may be nil when the provider reports no
// event for the day.
type ReferenceTimes struct {
	Sunrise *time.Time
	Sunset  *time.Time
}

// Comparison statuses for a single event.
const (
	CompareBothNone       = "both_none"
	CompareCalculatedNone = "calculated_none"
	CompareExternalNone   = "external_none"
	Compared              = "compared"
)

// Cross-check verdicts.
const (
	CrossCheckWithinTolerance   = "within_tolerance"
	CrossCheckExceededTolerance = "exceeded_tolerance"
)

// EventComparison records how one calculated event relates to the
// reference value. DeltaSec is meaningful only when Status is Compared.
type EventComparison struct {
	Event    string `json:"event"`
	Status   string `json:"status"`
	DeltaSec int    `json:"delta_sec,omitempty"`
}

// CrossCheckReport aggregates the per-event comparisons for one day
// against one provider.
type CrossCheckReport struct {
	Provider     string            `json:"provider"`
	Status       string            `json:"status"`
	ToleranceSec int               `json:"tolerance_sec"`
	MaxDeltaSec  int               `json:"max_delta_sec"`
	Events       []EventComparison `json:"events"`
}
