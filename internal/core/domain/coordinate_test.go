package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		elev    float64
		wantErr bool
	}{
		{name: "valid mid-latitude", lat: 51.5074, lon: -0.1278, elev: 11},
		{name: "poles are valid", lat: 90, lon: 180},
		{name: "antimeridian west", lat: -90, lon: -180},
		{name: "latitude too high", lat: 90.01, lon: 0, wantErr: true},
		{name: "latitude too low", lat: -91, lon: 0, wantErr: true},
		{name: "longitude too high", lat: 0, lon: 180.5, wantErr: true},
		{name: "longitude too low", lat: 0, lon: -200, wantErr: true},
		{name: "negative elevation", lat: 0, lon: 0, elev: -5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewGeoCoordinate(tt.lat, tt.lon, tt.elev)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidCoordinate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.lat, c.Lat)
			assert.Equal(t, tt.lon, c.Lon)
		})
	}
}

func TestParseLatLon(t *testing.T) {
	c, err := ParseLatLon("78.2232, 15.6267")
	require.NoError(t, err)
	assert.InDelta(t, 78.2232, c.Lat, 1e-9)
	assert.InDelta(t, 15.6267, c.Lon, 1e-9)

	_, err = ParseLatLon("not,numbers")
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	_, err = ParseLatLon("1;2")
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	_, err = ParseLatLon("95,0")
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}
