package driving

import "github.com/helio-labs/heliotime/internal/core/domain"

// SunCalculator computes sun event records for a validated request.
type SunCalculator interface {
	// Calculate validates the request, resolves the output zone (an
	// explicit zoneName wins over the longitude fallback) and returns
	// one record per requested day in ascending date order.
	Calculate(req domain.Request, zoneName string) (*domain.SunResult, error)

	// Position returns the refraction-corrected solar position for one
	// instant and observer.
	Position(req domain.PositionRequest) (domain.SolarPosition, error)
}
