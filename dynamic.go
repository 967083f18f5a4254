package healpix

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/hupe1980/healpix/internal/morton"
)

// MaxFaceResolution is the largest supported nside: the largest power of two
// whose face coordinates fit the 16-bit Morton interleave of the NESTED scheme.
const MaxFaceResolution = (morton.MaxCoord + 1) / 2

// ValidateFaceResolution reports whether nside is a power of two in
// [1, MaxFaceResolution]. The error matches ErrInvalidFaceResolution.
func ValidateFaceResolution(nside uint32) error {
	if nside == 0 || nside&(nside-1) != 0 || nside > MaxFaceResolution {
		return &ErrFaceResolution{FaceResolution: nside}
	}
	return nil
}

// Dynamic is a grid whose resolution is chosen at run time.
//
// The zero value is not a valid grid: conversions on it report
// ErrInvalidFaceResolution. Create one with NewDynamic.
// A Dynamic is immutable and safe for concurrent use.
type Dynamic struct {
	faceResolution uint32
}

// NewDynamic returns a grid with nside = faceResolution.
// It fails with ErrInvalidFaceResolution if faceResolution is not a power of
// two in [1, MaxFaceResolution].
func NewDynamic(faceResolution uint32, optFns ...Option) (Dynamic, error) {
	o := applyOptions(optFns)

	if err := ValidateFaceResolution(faceResolution); err != nil {
		o.logger.LogDescriptor(context.Background(), faceResolution, err)
		return Dynamic{}, err
	}

	o.logger.LogDescriptor(context.Background(), faceResolution, nil)
	return Dynamic{faceResolution: faceResolution}, nil
}

// MustDynamic is like NewDynamic but panics on an invalid resolution.
// It is intended for package-level variables, where an invalid value stops
// the program during initialization.
func MustDynamic(faceResolution uint32) Dynamic {
	d, err := NewDynamic(faceResolution)
	if err != nil {
		panic(err)
	}
	return d
}

// FaceResolution implements Healpix.
func (d Dynamic) FaceResolution() uint32 { return d.faceResolution }

// PixelsPerFace implements Healpix.
func (d Dynamic) PixelsPerFace() uint64 {
	n := uint64(d.faceResolution)
	return n * n
}

// TotalPixels implements Healpix.
func (d Dynamic) TotalPixels() uint64 { return Faces * d.PixelsPerFace() }

// Order returns log2(nside).
func (d Dynamic) Order() int { return bits.TrailingZeros32(d.faceResolution) }

func (d Dynamic) String() string {
	return fmt.Sprintf("healpix(nside=%d)", d.faceResolution)
}
