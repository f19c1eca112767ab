package cli

import (
	"context"
	"time"

	"github.com/helio-labs/heliotime/internal/adapters/driven/storage/memory"
	"github.com/helio-labs/heliotime/internal/core/domain"
)

// fakeSunCalculator returns a canned result and records the last request.
type fakeSunCalculator struct {
	result   *domain.SunResult
	position domain.SolarPosition
	err      error

	gotReq  domain.Request
	gotZone string
}

func (f *fakeSunCalculator) Calculate(req domain.Request, zoneName string) (*domain.SunResult, error) {
	f.gotReq = req
	f.gotZone = zoneName
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeSunCalculator) Position(_ domain.PositionRequest) (domain.SolarPosition, error) {
	if f.err != nil {
		return domain.SolarPosition{}, f.err
	}
	return f.position, nil
}

type fakeLocationResolver struct {
	coord    domain.GeoCoordinate
	err      error
	gotInput domain.LocationInput
}

func (f *fakeLocationResolver) Resolve(_ context.Context, input domain.LocationInput) (domain.GeoCoordinate, error) {
	f.gotInput = input
	if f.err != nil {
		return domain.GeoCoordinate{}, f.err
	}
	return f.coord, nil
}

type fakeCrossChecker struct {
	report *domain.CrossCheckReport
	err    error
}

func (f *fakeCrossChecker) Check(_ context.Context, _ domain.GeoCoordinate, _ domain.DayEventRecord) (*domain.CrossCheckReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

// londonResult builds a one-day canned result for 2025-09-01 in London.
func londonResult() *domain.SunResult {
	date := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	sunrise := time.Date(2025, 9, 1, 5, 13, 0, 0, time.UTC)
	sunset := time.Date(2025, 9, 1, 18, 46, 0, 0, time.UTC)

	return &domain.SunResult{
		Coordinate: domain.GeoCoordinate{Lat: 51.5074, Lon: -0.1278},
		Zone:       time.UTC,
		ZoneName:   "UTC",
		Days: []domain.DayEventRecord{
			{
				Date:         date,
				SolarNoon:    time.Date(2025, 9, 1, 11, 59, 45, 0, time.UTC),
				Sunrise:      &sunrise,
				Sunset:       &sunset,
				DayLengthSec: int(sunset.Sub(sunrise) / time.Second),
			},
		},
	}
}

// setupTestServices installs fakes for the package-level services and
// returns a cleanup that restores the originals. PersistentPreRunE
// skips initServices when sunService is already set, so no config file
// or network is touched.
func setupTestServices() func() {
	oldConfig := configStore
	oldSun := sunService
	oldLocations := locationService
	oldChecker := crossChecker

	configStore = memory.NewConfigStore(nil)
	sunService = &fakeSunCalculator{
		result:   londonResult(),
		position: domain.SolarPosition{AzimuthDeg: 120.5, AltitudeDeg: 35.2},
	}
	locationService = &fakeLocationResolver{
		coord: domain.GeoCoordinate{Lat: 51.5074, Lon: -0.1278},
	}
	crossChecker = nil

	return func() {
		configStore = oldConfig
		sunService = oldSun
		locationService = oldLocations
		crossChecker = oldChecker
	}
}
