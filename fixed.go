package healpix

import "fmt"

// Resolution is a face resolution known at compile time, used as the type
// argument of Fixed. Only the Order types implement it, so an invalid
// resolution cannot be expressed.
type Resolution interface {
	order() uint
}

// Order types select nside = 2^order.
type (
	Order0  struct{} // nside 1
	Order1  struct{} // nside 2
	Order2  struct{} // nside 4
	Order3  struct{} // nside 8
	Order4  struct{} // nside 16
	Order5  struct{} // nside 32
	Order6  struct{} // nside 64
	Order7  struct{} // nside 128
	Order8  struct{} // nside 256
	Order9  struct{} // nside 512
	Order10 struct{} // nside 1024
	Order11 struct{} // nside 2048
	Order12 struct{} // nside 4096
	Order13 struct{} // nside 8192
	Order14 struct{} // nside 16384
	Order15 struct{} // nside 32768
)

func (Order0) order() uint  { return 0 }
func (Order1) order() uint  { return 1 }
func (Order2) order() uint  { return 2 }
func (Order3) order() uint  { return 3 }
func (Order4) order() uint  { return 4 }
func (Order5) order() uint  { return 5 }
func (Order6) order() uint  { return 6 }
func (Order7) order() uint  { return 7 }
func (Order8) order() uint  { return 8 }
func (Order9) order() uint  { return 9 }
func (Order10) order() uint { return 10 }
func (Order11) order() uint { return 11 }
func (Order12) order() uint { return 12 }
func (Order13) order() uint { return 13 }
func (Order14) order() uint { return 14 }
func (Order15) order() uint { return 15 }

// Fixed is a grid whose resolution is part of its type. The zero value is
// ready to use:
//
//	var grid healpix.Fixed[healpix.Order6] // nside 64
type Fixed[R Resolution] struct{}

// FaceResolution implements Healpix.
func (Fixed[R]) FaceResolution() uint32 {
	var r R
	return 1 << r.order()
}

// PixelsPerFace implements Healpix.
func (f Fixed[R]) PixelsPerFace() uint64 {
	n := uint64(f.FaceResolution())
	return n * n
}

// TotalPixels implements Healpix.
func (f Fixed[R]) TotalPixels() uint64 { return Faces * f.PixelsPerFace() }

// Order returns log2(nside).
func (Fixed[R]) Order() int {
	var r R
	return int(r.order())
}

// Dynamic returns the run-time descriptor of the same resolution.
func (f Fixed[R]) Dynamic() Dynamic {
	return Dynamic{faceResolution: f.FaceResolution()}
}

func (f Fixed[R]) String() string {
	return fmt.Sprintf("healpix(nside=%d)", f.FaceResolution())
}
