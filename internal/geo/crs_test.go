package geo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUTMZone(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
		want int
	}{
		{"west lafayette indiana", 40.42, -86.91, 32616},
		{"greenwich", 51.47, 0.0, 32631},
		{"sydney", -33.87, 151.21, 32756},
		{"quito southern hemisphere edge", -0.5, -78.5, 32717},
		{"equator counts as north", 0, -78.5, 32617},
		{"western antimeridian", 12.0, -180.0, 32601},
		{"eastern antimeridian clamps to zone 60", 12.0, 180.0, 32660},
		{"south pole", -90, 0, 32731},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveUTMZone(tt.lat, tt.lon)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveUTMZoneBoundaries(t *testing.T) {
	// every 6-degree boundary maps to the adjacent eastern zone
	for zone := 1; zone <= 60; zone++ {
		lon := float64(-180 + (zone-1)*6)
		got, err := ResolveUTMZone(45, lon)
		require.NoError(t, err)
		assert.Equal(t, 32600+zone, got, "lon=%g", lon)

		got, err = ResolveUTMZone(-45, lon)
		require.NoError(t, err)
		assert.Equal(t, 32700+zone, got, "lon=%g", lon)
	}
}

func TestResolveUTMZoneRange(t *testing.T) {
	for lon := -180.0; lon <= 180.0; lon += 1.5 {
		for _, lat := range []float64{-90, -45.3, 0, 45.3, 90} {
			code, err := ResolveUTMZone(lat, lon)
			require.NoError(t, err)
			if lat >= 0 {
				assert.GreaterOrEqual(t, code, 32601)
				assert.LessOrEqual(t, code, 32660)
			} else {
				assert.GreaterOrEqual(t, code, 32701)
				assert.LessOrEqual(t, code, 32760)
			}
		}
	}
}

func TestResolveUTMZoneOutOfRange(t *testing.T) {
	for _, pt := range [][2]float64{
		{200, 50},
		{-91, 0},
		{0, 181},
		{0, -180.01},
	} {
		_, err := ResolveUTMZone(pt[0], pt[1])
		require.Error(t, err)
		var oor *ErrOutOfRange
		assert.True(t, errors.As(err, &oor))
	}
}

func TestBoundsCentroid(t *testing.T) {
	b := Bounds{MinX: -87, MinY: 40, MaxX: -86, MaxY: 41}
	lat, lon := b.Centroid()
	assert.InDelta(t, 40.5, lat, 1e-9)
	assert.InDelta(t, -86.5, lon, 1e-9)
}
