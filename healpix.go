package healpix

import (
	"iter"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/hupe1980/healpix/coord"
	"github.com/hupe1980/healpix/gnomonic"
	"github.com/hupe1980/healpix/internal/face"
)

// Faces is the number of base faces of the pixelization.
const Faces = face.Count

// Healpix describes a HEALPix grid of a given resolution.
//
// Implementations must report a FaceResolution that passes
// ValidateFaceResolution. Dynamic and Fixed are the provided implementations;
// the zero Dynamic does not. Conversions that return an error report
// ErrInvalidFaceResolution for such a grid, the others panic with it.
//
// The conversions below are package functions rather than methods because
// they are generic over the numbering scheme:
//
//	p := healpix.AngleToPixel[healpix.Nested](grid, theta, phi)
type Healpix interface {
	// FaceResolution returns nside, the number of pixels along a face edge.
	FaceResolution() uint32

	// PixelsPerFace returns nside².
	PixelsPerFace() uint64

	// TotalPixels returns 12·nside².
	TotalPixels() uint64
}

// checkNside returns the face resolution of h as the internal packages take it.
func checkNside(h Healpix) (int64, error) {
	nside := h.FaceResolution()
	if err := ValidateFaceResolution(nside); err != nil {
		return 0, err
	}
	return int64(nside), nil
}

func mustNside(h Healpix) int64 {
	nside, err := checkNside(h)
	if err != nil {
		panic(err)
	}
	return nside
}

// AngleToPixel returns the pixel containing colatitude theta and longitude
// phi (radians). phi is taken modulo 2π. A NaN or infinite angle yields the
// pixel containing the north pole at φ = 0.
func AngleToPixel[S Scheme](h Healpix, theta, phi float64) Pixel[S] {
	var s S
	return Pixel[S](s.angleToPixel(mustNside(h), theta, phi))
}

// PixelToAngle returns the colatitude and longitude (radians) of the centre
// of p. It fails with ErrInvalidPixel if p is not a pixel of h.
func PixelToAngle[S Scheme](h Healpix, p Pixel[S]) (theta, phi float64, err error) {
	nside, err := checkNside(h)
	if err != nil {
		return 0, 0, err
	}

	var s S
	theta, phi, err = s.pixelToAngle(nside, uint64(p))
	if err != nil {
		return 0, 0, translateError(err)
	}
	return theta, phi, nil
}

// SphericalToPixel returns the pixel containing c.
func SphericalToPixel[S Scheme](h Healpix, c coord.Spherical) Pixel[S] {
	return AngleToPixel[S](h, c.Theta.Radians(), c.Phi.Radians())
}

// PixelToSpherical returns the centre of p.
func PixelToSpherical[S Scheme](h Healpix, p Pixel[S]) (coord.Spherical, error) {
	theta, phi, err := PixelToAngle(h, p)
	if err != nil {
		return coord.Spherical{}, err
	}
	return coord.SphericalFromRadians(theta, phi), nil
}

// RaDecToPixel returns the pixel containing the equatorial position c, using
// θ = π/2 − dec and φ = ra mod 2π.
func RaDecToPixel[S Scheme](h Healpix, c coord.RaDec) Pixel[S] {
	theta := math.Pi/2 - c.Dec.Radians()
	phi := face.NormalizePhi(c.RA.Radians())
	return AngleToPixel[S](h, theta, phi)
}

// PixelToRaDec returns the equatorial position of the centre of p.
func PixelToRaDec[S Scheme](h Healpix, p Pixel[S]) (coord.RaDec, error) {
	theta, phi, err := PixelToAngle(h, p)
	if err != nil {
		return coord.RaDec{}, err
	}
	return coord.RaDec{
		RA:  s1.Angle(face.NormalizePhi(phi)),
		Dec: s1.Angle(math.Pi/2 - theta),
	}, nil
}

// PointToPixel returns the pixel containing the direction p.
// p need not be normalized.
func PointToPixel[S Scheme](h Healpix, p s2.Point) Pixel[S] {
	return SphericalToPixel[S](h, coord.SphericalFromPoint(p))
}

// PixelToPoint returns the unit vector of the centre of p.
func PixelToPoint[S Scheme](h Healpix, p Pixel[S]) (s2.Point, error) {
	c, err := PixelToSpherical(h, p)
	if err != nil {
		return s2.Point{}, err
	}
	return c.Point(), nil
}

// Face returns the base face (0..11) that p belongs to.
func Face[S Scheme](h Healpix, p Pixel[S]) (int, error) {
	nside, err := checkNside(h)
	if err != nil {
		return 0, err
	}
	if err := face.CheckPixel(nside, uint64(p)); err != nil {
		return 0, translateError(err)
	}
	var s S
	return s.toCoord(nside, uint64(p)).Face, nil
}

// Convert renumbers p from scheme From into scheme To. Both identify the same
// pixel of h. It fails with ErrInvalidPixel if p is not a pixel of h.
//
//	r, err := healpix.Convert[healpix.Ring](grid, nestedPixel)
func Convert[To, From Scheme](h Healpix, p Pixel[From]) (Pixel[To], error) {
	nside, err := checkNside(h)
	if err != nil {
		return 0, err
	}
	if err := face.CheckPixel(nside, uint64(p)); err != nil {
		return 0, translateError(err)
	}

	var (
		from From
		to   To
	)
	return Pixel[To](to.fromCoord(nside, from.toCoord(nside, uint64(p)))), nil
}

// Pixels returns every pixel of h in ascending index order.
//
// The sequence is lazy and may be iterated any number of times; breaking out
// of the loop stops the enumeration. The order is numeric, not spatial.
func Pixels[S Scheme](h Healpix) iter.Seq[Pixel[S]] {
	total := h.TotalPixels()
	return func(yield func(Pixel[S]) bool) {
		for i := range total {
			if !yield(Pixel[S](i)) {
				return
			}
		}
	}
}

// ProjectRaDec returns the gnomonic offset of point from the centre of p.
//
// ok is false if point does not lie in p, or if the projection is undefined.
func ProjectRaDec[S Scheme](h Healpix, p Pixel[S], point coord.RaDec) (pos coord.TangentPosition, ok bool) {
	if _, err := checkNside(h); err != nil {
		return coord.TangentPosition{}, false
	}
	if RaDecToPixel[S](h, point) != p {
		return coord.TangentPosition{}, false
	}

	center, err := PixelToRaDec(h, p)
	if err != nil {
		return coord.TangentPosition{}, false
	}

	return gnomonic.Project(center, point)
}
