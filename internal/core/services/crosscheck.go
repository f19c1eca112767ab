package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/helio-labs/heliotime/internal/core/domain"
	"github.com/helio-labs/heliotime/internal/core/ports/driven"
	"github.com/helio-labs/heliotime/internal/core/ports/driving"
)

// Ensure CrossCheckService implements the interface.
var _ driving.CrossChecker = (*CrossCheckService)(nil)

// DefaultToleranceSec is the accepted deviation from the reference
// provider. The simplified algorithm is usually within a minute or two.
const DefaultToleranceSec = 120

// CrossCheckService compares calculated sunrise/sunset against an
// external reference provider. Development tooling: it never runs on
// the normal calculation path.
type CrossCheckService struct {
	provider     driven.ReferenceProvider
	toleranceSec int

	// enforce turns an exceeded tolerance into an error instead of a
	// report-only verdict.
	enforce bool
}

// NewCrossCheckService creates a new cross-check service.
// toleranceSec <= 0 falls back to DefaultToleranceSec.
func NewCrossCheckService(provider driven.ReferenceProvider, toleranceSec int, enforce bool) *CrossCheckService {
	if toleranceSec <= 0 {
		toleranceSec = DefaultToleranceSec
	}
	return &CrossCheckService{
		provider:     provider,
		toleranceSec: toleranceSec,
		enforce:      enforce,
	}
}

// Check implements driving.CrossChecker.
func (s *CrossCheckService) Check(ctx context.Context, coord domain.GeoCoordinate, rec domain.DayEventRecord) (*domain.CrossCheckReport, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("no reference provider configured: %w", domain.ErrReferenceUnavailable)
	}

	ref, err := s.provider.Fetch(ctx, coord, rec.Date)
	if err != nil {
		return nil, fmt.Errorf("fetching reference times: %w", err)
	}

	report := &domain.CrossCheckReport{
		Provider:     s.provider.Name(),
		Status:       domain.CrossCheckWithinTolerance,
		ToleranceSec: s.toleranceSec,
		Events: []domain.EventComparison{
			compareEvent("sunrise", rec.Sunrise, ref.Sunrise),
			compareEvent("sunset", rec.Sunset, ref.Sunset),
		},
	}

	for _, ev := range report.Events {
		if ev.Status == domain.Compared && ev.DeltaSec > report.MaxDeltaSec {
			report.MaxDeltaSec = ev.DeltaSec
		}
	}
	if report.MaxDeltaSec > s.toleranceSec {
		report.Status = domain.CrossCheckExceededTolerance
		if s.enforce {
			return report, fmt.Errorf("%w: max delta %ds over tolerance %ds against %s",
				domain.ErrToleranceExceeded, report.MaxDeltaSec, s.toleranceSec, report.Provider)
		}
	}
	return report, nil
}

// compareEvent classifies one calculated/reference pair. The delta is
// the absolute difference in whole seconds; instants compare correctly
// across zones.
func compareEvent(name string, calculated, external *time.Time) domain.EventComparison {
	switch {
	case calculated == nil && external == nil:
		return domain.EventComparison{Event: name, Status: domain.CompareBothNone}
	case calculated == nil:
		return domain.EventComparison{Event: name, Status: domain.CompareCalculatedNone}
	case external == nil:
		return domain.EventComparison{Event: name, Status: domain.CompareExternalNone}
	}

	delta := int(math.Abs(calculated.Sub(*external).Seconds()))
	return domain.EventComparison{Event: name, Status: domain.Compared, DeltaSec: delta}
}
