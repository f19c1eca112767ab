package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

type fakeReferenceProvider struct {
	times *domain.ReferenceTimes
	err   error
}

func (f *fakeReferenceProvider) Name() string { return "fake-reference" }

func (f *fakeReferenceProvider) Fetch(_ context.Context, _ domain.GeoCoordinate, _ time.Time) (*domain.ReferenceTimes, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.times, nil
}

func timePtr(t time.Time) *time.Time { return &t }

func dayRecord(sunrise, sunset *time.Time) domain.DayEventRecord {
	return domain.DayEventRecord{
		Date:    time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		Sunrise: sunrise,
		Sunset:  sunset,
	}
}

func TestCrossCheckService_WithinTolerance(t *testing.T) {
	sunrise := time.Date(2025, time.September, 1, 5, 13, 0, 0, time.UTC)
	sunset := time.Date(2025, time.September, 1, 18, 46, 0, 0, time.UTC)

	provider := &fakeReferenceProvider{times: &domain.ReferenceTimes{
		Sunrise: timePtr(sunrise.Add(40 * time.Second)),
		Sunset:  timePtr(sunset.Add(-25 * time.Second)),
	}}
	svc := NewCrossCheckService(provider, 120, false)

	report, err := svc.Check(context.Background(), domain.GeoCoordinate{Lat: 51.5, Lon: 0},
		dayRecord(timePtr(sunrise), timePtr(sunset)))
	require.NoError(t, err)

	assert.Equal(t, "fake-reference", report.Provider)
	assert.Equal(t, domain.CrossCheckWithinTolerance, report.Status)
	assert.Equal(t, 40, report.MaxDeltaSec)
	require.Len(t, report.Events, 2)
	assert.Equal(t, domain.Compared, report.Events[0].Status)
	assert.Equal(t, 40, report.Events[0].DeltaSec)
	assert.Equal(t, 25, report.Events[1].DeltaSec)
}

func TestCrossCheckService_ExceededTolerance(t *testing.T) {
	sunrise := time.Date(2025, time.September, 1, 5, 13, 0, 0, time.UTC)

	provider := &fakeReferenceProvider{times: &domain.ReferenceTimes{
		Sunrise: timePtr(sunrise.Add(5 * time.Minute)),
	}}
	svc := NewCrossCheckService(provider, 120, false)

	report, err := svc.Check(context.Background(), domain.GeoCoordinate{Lat: 51.5, Lon: 0},
		dayRecord(timePtr(sunrise), nil))
	require.NoError(t, err)

	assert.Equal(t, domain.CrossCheckExceededTolerance, report.Status)
	assert.Equal(t, 300, report.MaxDeltaSec)
}

func TestCrossCheckService_EnforceMode(t *testing.T) {
	sunrise := time.Date(2025, time.September, 1, 5, 13, 0, 0, time.UTC)

	provider := &fakeReferenceProvider{times: &domain.ReferenceTimes{
		Sunrise: timePtr(sunrise.Add(10 * time.Minute)),
	}}
	svc := NewCrossCheckService(provider, 120, true)

	report, err := svc.Check(context.Background(), domain.GeoCoordinate{Lat: 51.5, Lon: 0},
		dayRecord(timePtr(sunrise), nil))
	assert.ErrorIs(t, err, domain.ErrToleranceExceeded)
	// The report is still returned alongside the error.
	require.NotNil(t, report)
	assert.Equal(t, domain.CrossCheckExceededTolerance, report.Status)
}

func TestCrossCheckService_EventStatuses(t *testing.T) {
	at := time.Date(2025, time.June, 15, 1, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		calculated *time.Time
		external   *time.Time
		want       string
	}{
		{"both missing", nil, nil, domain.CompareBothNone},
		{"only calculated missing", nil, timePtr(at), domain.CompareCalculatedNone},
		{"only external missing", timePtr(at), nil, domain.CompareExternalNone},
		{"both present", timePtr(at), timePtr(at), domain.Compared},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compareEvent("sunrise", tt.calculated, tt.external)
			assert.Equal(t, tt.want, got.Status)
		})
	}
}

func TestCrossCheckService_PolarDayBothNone(t *testing.T) {
	// Polar day: neither side reports events, which counts as agreement.
	provider := &fakeReferenceProvider{times: &domain.ReferenceTimes{}}
	svc := NewCrossCheckService(provider, 0, false)

	report, err := svc.Check(context.Background(), domain.GeoCoordinate{Lat: 78.2, Lon: 15.6},
		dayRecord(nil, nil))
	require.NoError(t, err)

	assert.Equal(t, domain.CrossCheckWithinTolerance, report.Status)
	assert.Equal(t, DefaultToleranceSec, report.ToleranceSec)
	assert.Zero(t, report.MaxDeltaSec)
}

func TestCrossCheckService_ProviderUnavailable(t *testing.T) {
	provider := &fakeReferenceProvider{
		err: fmt.Errorf("timeout: %w", domain.ErrReferenceUnavailable),
	}
	svc := NewCrossCheckService(provider, 120, false)

	_, err := svc.Check(context.Background(), domain.GeoCoordinate{Lat: 51.5, Lon: 0},
		dayRecord(nil, nil))
	assert.ErrorIs(t, err, domain.ErrReferenceUnavailable)
}

func TestCrossCheckService_NoProvider(t *testing.T) {
	svc := NewCrossCheckService(nil, 120, false)

	_, err := svc.Check(context.Background(), domain.GeoCoordinate{Lat: 51.5, Lon: 0},
		dayRecord(nil, nil))
	assert.ErrorIs(t, err, domain.ErrReferenceUnavailable)
}
