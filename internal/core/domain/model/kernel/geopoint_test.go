package kernel_test

import (
	"testing"

	"baleconnect/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(18.7883, 98.9853)
		require.NoError(t, err)
		require.NoError(t, point.Validate())
		assert.InDelta(t, 18.7883, point.Lat(), 1e-9)
		assert.InDelta(t, 98.9853, point.Lng(), 1e-9)
	})

	t.Run("boundary coordinates", func(t *testing.T) {
		for _, tc := range []struct{ lat, lng float64 }{
			{-90, -180},
			{90, 180},
			{0, 0},
		} {
			_, err := kernel.NewGeoPoint(tc.lat, tc.lng)
			require.NoError(t, err)
		}
	})

	t.Run("out of range latitude", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(91, 0)
		require.Error(t, err)
	})

	t.Run("out of range longitude", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -181)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var point kernel.GeoPoint
		assert.Error(t, point.Validate())
	})
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	t.Run("zero distance to itself", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(18.7883, 98.9853)
		require.NoError(t, err)
		assert.InDelta(t, 0, point.DistanceKm(point), 1e-9)
	})

	t.Run("Chiang Mai to Bangkok", func(t *testing.T) {
		chiangMai, err := kernel.NewGeoPoint(18.7883, 98.9853)
		require.NoError(t, err)
		bangkok, err := kernel.NewGeoPoint(13.7563, 100.5018)
		require.NoError(t, err)

		// Roughly 580 km as the crow flies.
		distance := chiangMai.DistanceKm(bangkok)
		assert.InDelta(t, 580, distance, 10)
	})

	t.Run("symmetric", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(18.79, 98.98)
		b, _ := kernel.NewGeoPoint(18.80, 99.00)
		assert.InDelta(t, a.DistanceKm(b), b.DistanceKm(a), 1e-9)
	})
}

func TestFormatDistanceKm(t *testing.T) {
	assert.Equal(t, "500 m", kernel.FormatDistanceKm(0.5))
	assert.Equal(t, "999 m", kernel.FormatDistanceKm(0.999))
	assert.Equal(t, "1.0 km", kernel.FormatDistanceKm(1.0))
	assert.Equal(t, "12.3 km", kernel.FormatDistanceKm(12.34))
}
