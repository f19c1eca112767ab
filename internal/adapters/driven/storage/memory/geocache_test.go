package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helio-labs/heliotime/internal/core/domain"
)

func TestGeocodeCache_PutGet(t *testing.T) {
	cache := NewGeocodeCache(0)
	ctx := context.Background()

	place := &domain.Place{
		Coordinate:  domain.GeoCoordinate{Lat: 52.52, Lon: 13.405, ElevationM: 34},
		DisplayName: "Berlin",
	}
	require.NoError(t, cache.Put(ctx, "city:de:berlin", place))

	got, ok, err := cache.Get(ctx, "city:de:berlin")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, *place, *got)

	_, ok, err = cache.Get(ctx, "city:de:hamburg")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGeocodeCache_ReplaceExisting(t *testing.T) {
	cache := NewGeocodeCache(0)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "k", &domain.Place{DisplayName: "old"}))
	require.NoError(t, cache.Put(ctx, "k", &domain.Place{DisplayName: "new"}))

	got, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new", got.DisplayName)
	assert.Equal(t, 1, cache.Len())
}

func TestGeocodeCache_Expiry(t *testing.T) {
	cache := NewGeocodeCache(time.Hour)
	ctx := context.Background()

	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Put(ctx, "k", &domain.Place{DisplayName: "fresh"}))

	_, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	// Past the TTL the entry is gone.
	now = now.Add(2 * time.Hour)
	_, ok, err = cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, cache.Len())
}

func TestGeocodeCache_ReturnsCopy(t *testing.T) {
	cache := NewGeocodeCache(0)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "k", &domain.Place{DisplayName: "original"}))

	got, _, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	got.DisplayName = "mutated"

	again, _, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "original", again.DisplayName)
}
