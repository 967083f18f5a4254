package healpix

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/healpix/coord"
)

const (
	opRaDecToPixel = "ra_dec_to_pixel"
	opPixelToRaDec = "pixel_to_ra_dec"
)

// BatchRaDecToPixel converts points to pixels concurrently.
//
// The input is split into chunks (WithChunkSize) converted by at most
// WithConcurrency goroutines. The result is element-wise identical to calling
// RaDecToPixel on each point. ctx is checked between chunks; on cancellation
// the context error is returned and no partial result.
func BatchRaDecToPixel[S Scheme](ctx context.Context, h Healpix, points []coord.RaDec, optFns ...Option) ([]Pixel[S], error) {
	if _, err := checkNside(h); err != nil {
		return nil, err
	}

	out := make([]Pixel[S], len(points))

	err := runBatch(ctx, opRaDecToPixel, SchemeName[S](), len(points), optFns, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			out[i] = RaDecToPixel[S](h, points[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// BatchPixelToRaDec converts pixels to the equatorial positions of their
// centres concurrently. It fails with ErrInvalidPixel if any pixel is out of
// range; the error names the offending index.
func BatchPixelToRaDec[S Scheme](ctx context.Context, h Healpix, pixels []Pixel[S], optFns ...Option) ([]coord.RaDec, error) {
	if _, err := checkNside(h); err != nil {
		return nil, err
	}

	out := make([]coord.RaDec, len(pixels))

	err := runBatch(ctx, opPixelToRaDec, SchemeName[S](), len(pixels), optFns, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			c, err := PixelToRaDec(h, pixels[i])
			if err != nil {
				return fmt.Errorf("pixel at index %d: %w", i, err)
			}
			out[i] = c
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// runBatch fans fn out over [0, n) in chunks. Each chunk writes a disjoint
// range of the caller's output.
func runBatch(ctx context.Context, op, scheme string, n int, optFns []Option, fn func(lo, hi int) error) error {
	o := applyOptions(optFns)
	logger := o.logger.WithScheme(scheme)
	start := time.Now()

	var limiter *rate.Limiter
	if o.rateLimit > 0 {
		// Burst must cover a whole chunk or WaitN fails outright.
		limiter = rate.NewLimiter(rate.Limit(o.rateLimit), max(o.rateLimit, o.chunkSize))
	}

	err := ctx.Err()
	if err == nil {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.concurrency)

		for lo := 0; lo < n; lo += o.chunkSize {
			if gctx.Err() != nil {
				break
			}
			hi := min(lo+o.chunkSize, n)
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				if limiter != nil {
					if err := limiter.WaitN(gctx, hi-lo); err != nil {
						return err
					}
				}
				return fn(lo, hi)
			})
		}

		err = g.Wait()
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
	}

	duration := time.Since(start)
	o.metricsCollector.RecordBatch(op, n, duration, err)
	logger.LogBatch(ctx, op, n, duration, err)

	return err
}
