package gnomonic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/healpix/coord"
)

func TestProject_CenterIsOrigin(t *testing.T) {
	for _, c := range []coord.RaDec{
		coord.RaDecFromDegrees(0, 0),
		coord.RaDecFromDegrees(83.63, 22.01),
		coord.RaDecFromDegrees(200, -75),
	} {
		pos, ok := Project(c, c)
		require.True(t, ok)
		assert.Equal(t, 0.0, pos.X)
		assert.Equal(t, 0.0, pos.Y)
	}
}

func TestProject_Axes(t *testing.T) {
	center := coord.RaDecFromDegrees(0, 0)

	north, ok := Project(center, coord.RaDecFromDegrees(0, 30))
	require.True(t, ok)
	assert.InDelta(t, 0.0, north.X, 1e-12)
	assert.InDelta(t, math.Tan(math.Pi/6), north.Y, 1e-12)

	east, ok := Project(center, coord.RaDecFromDegrees(30, 0))
	require.True(t, ok)
	assert.InDelta(t, math.Tan(math.Pi/6), east.X, 1e-12)
	assert.InDelta(t, 0.0, east.Y, 1e-12)
}

func TestProject_FarHemisphere(t *testing.T) {
	tests := []struct {
		name          string
		center, point coord.RaDec
	}{
		{"antipode", coord.RaDecFromDegrees(0, 0), coord.RaDecFromDegrees(180, 0)},
		{"100 degrees", coord.RaDecFromDegrees(0, 0), coord.RaDecFromDegrees(100, 0)},
		{"beyond pole", coord.RaDecFromDegrees(0, 90), coord.RaDecFromDegrees(0, -5)},
		{"just past 90", coord.RaDecFromDegrees(10, 0), coord.RaDecFromDegrees(100.001, 0)},
		{"90 along ra", coord.RaDecFromDegrees(0, 0), coord.RaDecFromDegrees(90, 0)},
		{"90 along ra shifted", coord.RaDecFromDegrees(10, 0), coord.RaDecFromDegrees(100, 0)},
		{"90 along dec", coord.RaDecFromDegrees(0, 0), coord.RaDecFromDegrees(0, 90)},
		{"90 from pole", coord.RaDecFromDegrees(0, 90), coord.RaDecFromDegrees(45, 0)},
		{"nan", coord.RaDecFromDegrees(0, 0), coord.RaDecFromDegrees(math.NaN(), 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Project(tt.center, tt.point)
			assert.False(t, ok)
		})
	}
}

func TestUnproject_RoundTrip(t *testing.T) {
	center := coord.RaDecFromDegrees(57.3, 17.2)
	for _, p := range []coord.RaDec{
		coord.RaDecFromDegrees(68.75, 28.65),
		coord.RaDecFromDegrees(50, 10),
		coord.RaDecFromDegrees(57.3, 60),
		center,
	} {
		pos, ok := Project(center, p)
		require.True(t, ok)

		back := Unproject(center, pos)
		assert.InDelta(t, p.RA.Radians(), back.RA.Radians(), 1e-12)
		assert.InDelta(t, p.Dec.Radians(), back.Dec.Radians(), 1e-12)
	}
}

func TestProject_DistanceGrowsAsTangent(t *testing.T) {
	center := coord.RaDecFromDegrees(120, -30)
	p := coord.RaDecFromDegrees(125, -27)

	pos, ok := Project(center, p)
	require.True(t, ok)
	assert.InDelta(t, math.Tan(center.Separation(p).Radians()), pos.Norm(), 1e-12)
}
