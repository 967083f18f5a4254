package coord

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/hupe1980/healpix/internal/face"
)

// Spherical is a position given by colatitude and longitude.
type Spherical struct {
	Theta s1.Angle
	Phi   s1.Angle
}

// SphericalFromRadians returns the position (theta, phi) in radians.
func SphericalFromRadians(theta, phi float64) Spherical {
	return Spherical{Theta: s1.Angle(theta), Phi: s1.Angle(phi)}
}

// SphericalFromPoint returns the position of the unit vector p.
func SphericalFromPoint(p s2.Point) Spherical {
	return Spherical{
		Theta: s1.Angle(math.Atan2(math.Hypot(p.X, p.Y), p.Z)),
		Phi:   s1.Angle(face.NormalizePhi(math.Atan2(p.Y, p.X))),
	}
}

// RaDec converts s to the equatorial convention.
func (s Spherical) RaDec() RaDec {
	return RaDec{
		RA:  s1.Angle(face.NormalizePhi(s.Phi.Radians())),
		Dec: s1.Angle(math.Pi/2 - s.Theta.Radians()),
	}
}

// Point returns the unit vector of s.
func (s Spherical) Point() s2.Point {
	st, ct := math.Sincos(s.Theta.Radians())
	sp, cp := math.Sincos(s.Phi.Radians())
	return s2.PointFromCoords(st*cp, st*sp, ct)
}

func (s Spherical) String() string {
	return fmt.Sprintf("(θ=%.9f, φ=%.9f)", s.Theta.Radians(), s.Phi.Radians())
}

// RaDec is a position given by right ascension and declination.
type RaDec struct {
	RA  s1.Angle
	Dec s1.Angle
}

// RaDecFromDegrees returns the position (ra, dec) given in degrees.
func RaDecFromDegrees(ra, dec float64) RaDec {
	return RaDec{RA: s1.Angle(ra) * s1.Degree, Dec: s1.Angle(dec) * s1.Degree}
}

// RaDecFromLatLng interprets ll as declination (latitude) and right ascension
// (longitude).
func RaDecFromLatLng(ll s2.LatLng) RaDec {
	return RaDec{RA: ll.Lng, Dec: ll.Lat}
}

// Spherical converts c to colatitude and longitude.
func (c RaDec) Spherical() Spherical {
	return Spherical{
		Theta: s1.Angle(math.Pi/2 - c.Dec.Radians()),
		Phi:   s1.Angle(face.NormalizePhi(c.RA.Radians())),
	}
}

// LatLng returns c as an s2.LatLng.
func (c RaDec) LatLng() s2.LatLng {
	return s2.LatLng{Lat: c.Dec, Lng: c.RA}
}

// Point returns the unit vector of c.
func (c RaDec) Point() s2.Point {
	return s2.PointFromLatLng(c.LatLng())
}

// Separation returns the great-circle distance between c and o.
func (c RaDec) Separation(o RaDec) s1.Angle {
	return c.LatLng().Distance(o.LatLng())
}

func (c RaDec) String() string {
	return fmt.Sprintf("(ra=%.9f°, dec=%.9f°)", c.RA.Degrees(), c.Dec.Degrees())
}

// TangentPosition is an offset on the plane tangent to the sphere at a
// reference point. Units are tangent-plane lengths (radians near the origin).
type TangentPosition struct {
	X float64
	Y float64
}

// Norm returns the distance from the tangent point.
func (t TangentPosition) Norm() float64 {
	return math.Hypot(t.X, t.Y)
}
