package healpix

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/healpix/coord"
	"github.com/hupe1980/healpix/testutil"
)

func TestBatchRaDecToPixel(t *testing.T) {
	grid := MustDynamic(128)
	points := testutil.NewRNG(4711).RaDecs(10000)

	t.Run("MatchesSingle", func(t *testing.T) {
		got, err := BatchRaDecToPixel[Nested](context.Background(), grid, points,
			WithChunkSize(97), WithConcurrency(3))
		require.NoError(t, err)
		require.Len(t, got, len(points))

		for i, pt := range points {
			assert.Equal(t, RaDecToPixel[Nested](grid, pt), got[i])
		}
	})

	t.Run("Ring", func(t *testing.T) {
		got, err := BatchRaDecToPixel[Ring](context.Background(), grid, points)
		require.NoError(t, err)
		for i, pt := range points {
			assert.Equal(t, RaDecToPixel[Ring](grid, pt), got[i])
		}
	})

	t.Run("Empty", func(t *testing.T) {
		got, err := BatchRaDecToPixel[Nested](context.Background(), grid, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		got, err := BatchRaDecToPixel[Nested](ctx, grid, points)
		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, got)
	})
}

func TestBatchPixelToRaDec(t *testing.T) {
	grid := MustDynamic(64)

	t.Run("MatchesSingle", func(t *testing.T) {
		pixels := make([]Pixel[Ring], 0, grid.TotalPixels())
		for p := range Pixels[Ring](grid) {
			pixels = append(pixels, p)
		}

		got, err := BatchPixelToRaDec(context.Background(), grid, pixels, WithChunkSize(1000))
		require.NoError(t, err)
		require.Len(t, got, len(pixels))

		for i, p := range pixels {
			want, err := PixelToRaDec(grid, p)
			require.NoError(t, err)
			assert.Equal(t, want, got[i])
		}
	})

	t.Run("InvalidPixel", func(t *testing.T) {
		pixels := []Pixel[Nested]{0, 1, 2, 3, 4, Pixel[Nested](grid.TotalPixels()), 6}

		got, err := BatchPixelToRaDec(context.Background(), grid, pixels, WithChunkSize(2))
		require.ErrorIs(t, err, ErrInvalidPixel)
		assert.Contains(t, err.Error(), "index 5")
		assert.Nil(t, got)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		pixels := []Pixel[Nested]{0, 100, 4095, Pixel[Nested](grid.TotalPixels() - 1)}

		centers, err := BatchPixelToRaDec(context.Background(), grid, pixels)
		require.NoError(t, err)

		back, err := BatchRaDecToPixel[Nested](context.Background(), grid, centers)
		require.NoError(t, err)
		assert.Equal(t, pixels, back)
	})
}

func TestBatchRateLimit(t *testing.T) {
	grid := MustDynamic(32)
	points := testutil.NewRNG(1).RaDecs(300)

	t.Run("WithinBurst", func(t *testing.T) {
		got, err := BatchRaDecToPixel[Nested](context.Background(), grid, points,
			WithRateLimit(1000), WithChunkSize(100))
		require.NoError(t, err)
		assert.Len(t, got, len(points))
	})

	t.Run("CancelWhileWaiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		time.AfterFunc(20*time.Millisecond, cancel)

		start := time.Now()
		got, err := BatchRaDecToPixel[Nested](ctx, grid, points,
			WithRateLimit(10), WithChunkSize(10), WithConcurrency(2))
		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, got)
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}

func TestBatchMetrics(t *testing.T) {
	grid := MustDynamic(16)
	metrics := &BasicMetricsCollector{}

	points := []coord.RaDec{coord.RaDecFromDegrees(10, 10), coord.RaDecFromDegrees(200, -30)}
	_, err := BatchRaDecToPixel[Nested](context.Background(), grid, points, WithMetricsCollector(metrics))
	require.NoError(t, err)

	_, err = BatchPixelToRaDec(context.Background(), grid, []Pixel[Nested]{Pixel[Nested](grid.TotalPixels())},
		WithMetricsCollector(metrics))
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.BatchCount)
	assert.Equal(t, int64(3), stats.BatchItems)
	assert.Equal(t, int64(1), stats.BatchErrors)
	assert.GreaterOrEqual(t, stats.BatchAvgNanos, int64(0))
}

func BenchmarkBatchRaDecToPixel(b *testing.B) {
	grid := MustDynamic(1024)
	points := testutil.NewRNG(1).RaDecs(100000)
	ctx := context.Background()

	for b.Loop() {
		_, _ = BatchRaDecToPixel[Nested](ctx, grid, points)
	}
}
