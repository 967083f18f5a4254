package face

import "fmt"

// RangeError reports a pixel index outside [0, Total).
type RangeError struct {
	Pixel uint64
	Total uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("pixel %d out of range [0, %d)", e.Pixel, e.Total)
}

// TotalPixels returns 12·nside².
func TotalPixels(nside int64) uint64 {
	return uint64(Count * nside * nside)
}

// CheckPixel returns a *RangeError if pix is not a pixel of the grid.
func CheckPixel(nside int64, pix uint64) error {
	if total := TotalPixels(nside); pix >= total {
		return &RangeError{Pixel: pix, Total: total}
	}
	return nil
}
