package driving

import (
	"context"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

// CrossChecker compares a calculated day record against an external
// reference provider. Development tooling only.
type CrossChecker interface {
	// Check fetches reference times for the record's date and reports
	// the per-event deltas and the overall verdict.
	Check(ctx context.Context, coord domain.GeoCoordinate, rec domain.DayEventRecord) (*domain.CrossCheckReport, error)
}
