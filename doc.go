// Package healpix implements the HEALPix pixelization of the sphere.
//
// HEALPix (Hierarchical Equal Area isoLatitude Pixelization) divides the
// sphere into 12 base faces, each split into nside × nside pixels of equal
// area. Pixel centres lie on 4·nside − 1 rings of constant latitude. nside,
// the face resolution, must be a power of two between 1 and 32768.
//
// # Quick Start
//
// A grid is described by a Healpix value. Its resolution is chosen at run
// time with NewDynamic or at compile time with Fixed:
//
//	grid, err := healpix.NewDynamic(64)    // 49152 pixels
//	var fixed healpix.Fixed[healpix.Order6] // same grid, checked by the compiler
//
// Conversions are generic over the numbering scheme:
//
//	p := healpix.RaDecToPixel[healpix.Nested](grid, coord.RaDecFromDegrees(83.6, 22.0))
//	center, _ := healpix.PixelToRaDec(grid, p)
//	r, _ := healpix.Convert[healpix.Ring](grid, p)
//
// # Numbering Schemes
//
// Nested numbers pixels along a Z-order curve inside each base face. The
// four children of pixel p at nside·2 are 4p..4p+3, and nearby pixels tend to
// have nearby indices.
//
// Ring numbers pixels ring by ring from the north pole, eastward within a
// ring, so indices increase with colatitude.
//
// Pixel[Nested] and Pixel[Ring] are distinct types; mixing them is a compile
// error rather than a silent wrong answer.
//
// # Batches
//
// BatchRaDecToPixel and BatchPixelToRaDec convert large slices on a bounded
// set of goroutines:
//
//	pixels, err := healpix.BatchRaDecToPixel[healpix.Nested](ctx, grid, points,
//	    healpix.WithConcurrency(8),
//	    healpix.WithMetricsCollector(&healpix.BasicMetricsCollector{}))
//
// # Coverage
//
// A Coverage is a compressed pixel set:
//
//	cov := healpix.CoverRaDec[healpix.Nested](grid, slices.Values(points))
//	cov.Contains(p)
//
// # Thread Safety
//
// Descriptors and pixels are immutable values and may be shared freely.
// Coverage requires external synchronization for mutation.
package healpix
