package healpix

import "fmt"

// Pixel is a pixel index in numbering scheme S.
//
// Pixel[Nested] and Pixel[Ring] are distinct types, so indices of different
// schemes cannot be compared or mixed by accident. A Pixel is not validated on
// construction; conversions back to an angle report out-of-range values.
type Pixel[S Scheme] uint64

// PixelFromUint64 wraps a raw index, e.g. one read from storage.
func PixelFromUint64[S Scheme](v uint64) Pixel[S] {
	return Pixel[S](v)
}

// Uint64 returns the raw index.
func (p Pixel[S]) Uint64() uint64 {
	return uint64(p)
}

func (p Pixel[S]) String() string {
	var s S
	return fmt.Sprintf("%s:%d", s, uint64(p))
}
