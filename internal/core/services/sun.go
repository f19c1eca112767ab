package services

import (
	"fmt"

	"github.com/helio-labs/heliotime/internal/core/astro"
	"github.com/helio-labs/heliotime/internal/core/domain"
	"github.com/helio-labs/heliotime/internal/core/ports/driven"
	"github.com/helio-labs/heliotime/internal/core/ports/driving"
)

// Ensure SunService implements the interface.
var _ driving.SunCalculator = (*SunService)(nil)

// SunService validates requests, resolves output zones and runs the
// range calculator.
type SunService struct {
	timezones    driven.TimezoneResolver
	maxRangeDays int
}

// NewSunService creates a new sun service. maxRangeDays <= 0 falls back
// to the domain default.
func NewSunService(timezones driven.TimezoneResolver, maxRangeDays int) *SunService {
	return &SunService{
		timezones:    timezones,
		maxRangeDays: maxRangeDays,
	}
}

// Calculate implements driving.SunCalculator.
func (s *SunService) Calculate(req domain.Request, zoneName string) (*domain.SunResult, error) {
	if err := req.Validate(s.maxRangeDays); err != nil {
		return nil, fmt.Errorf("validating request: %w", err)
	}

	zone, err := s.timezones.Resolve(zoneName, req.Coordinate)
	if err != nil {
		return nil, fmt.Errorf("resolving output zone: %w", err)
	}

	days := astro.RangeEvents(req.Start, req.End, req.Coordinate, astro.Options{
		ElevationCorrection: req.ElevationCorrection,
		IncludeTwilight:     req.IncludeTwilight,
		Zone:                zone,
	})

	return &domain.SunResult{
		Coordinate: req.Coordinate,
		Zone:       zone,
		ZoneName:   zone.String(),
		Days:       days,
	}, nil
}

// Position implements driving.SunCalculator.
func (s *SunService) Position(req domain.PositionRequest) (domain.SolarPosition, error) {
	if err := req.Validate(); err != nil {
		return domain.SolarPosition{}, fmt.Errorf("validating position request: %w", err)
	}
	return astro.Position(req.At, req.Coordinate, req.Conditions.OrDefaults()), nil
}
