package healpix

import (
	"errors"
	"fmt"

	"github.com/hupe1980/healpix/internal/face"
)

var (
	// ErrInvalidFaceResolution is returned when a face resolution is not a
	// power of two in [1, MaxFaceResolution].
	ErrInvalidFaceResolution = errors.New("face resolution must be a power of two")

	// ErrInvalidPixel is returned when a pixel index is not below the total
	// pixel count of the grid.
	ErrInvalidPixel = errors.New("pixel is out of bounds")
)

// ErrFaceResolution reports a rejected face resolution.
//
// It matches ErrInvalidFaceResolution with errors.Is.
type ErrFaceResolution struct {
	FaceResolution uint32
}

func (e *ErrFaceResolution) Error() string {
	return fmt.Sprintf("invalid face resolution %d: must be a power of two in [1, %d]", e.FaceResolution, MaxFaceResolution)
}

func (e *ErrFaceResolution) Is(target error) bool { return target == ErrInvalidFaceResolution }

// ErrPixelOutOfRange reports a pixel index outside [0, TotalPixels).
//
// It unwraps to ErrInvalidPixel.
type ErrPixelOutOfRange struct {
	Pixel       uint64
	TotalPixels uint64
}

func (e *ErrPixelOutOfRange) Error() string {
	return fmt.Sprintf("pixel %d out of range: grid has %d pixels", e.Pixel, e.TotalPixels)
}

func (e *ErrPixelOutOfRange) Unwrap() error { return ErrInvalidPixel }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var re *face.RangeError
	if errors.As(err, &re) {
		return &ErrPixelOutOfRange{Pixel: re.Pixel, TotalPixels: re.Total}
	}

	return err
}
