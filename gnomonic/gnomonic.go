package gnomonic

import (
	"math"

	"github.com/golang/geo/s1"

	"github.com/hupe1980/healpix/coord"
	"github.com/hupe1980/healpix/internal/face"
)

// horizon is the smallest cos(separation) still projected. Points closer to
// 90° than this map beyond any finite tangent-plane range.
const horizon = 1e-12

// Project returns the tangent-plane offset of point relative to center.
// ok is false when point lies 90° or more from center.
func Project(center, point coord.RaDec) (pos coord.TangentPosition, ok bool) {
	deltaRA := point.RA.Radians() - center.RA.Radians()

	sinDec, cosDec := math.Sincos(point.Dec.Radians())
	sinCenter, cosCenter := math.Sincos(center.Dec.Radians())
	sinDelta, cosDelta := math.Sincos(deltaRA)

	denom := sinDec*sinCenter + cosDec*cosCenter*cosDelta
	if !(denom > horizon) {
		return coord.TangentPosition{}, false
	}

	return coord.TangentPosition{
		X: cosDec * sinDelta / denom,
		Y: (cosCenter*sinDec - sinCenter*cosDec*cosDelta) / denom,
	}, true
}

// Unproject is the inverse of Project.
func Unproject(center coord.RaDec, pos coord.TangentPosition) coord.RaDec {
	rho := pos.Norm()
	if rho == 0 {
		return center
	}

	c := math.Atan(rho)
	sinC, cosC := math.Sincos(c)
	sinCenter, cosCenter := math.Sincos(center.Dec.Radians())

	dec := math.Asin(cosC*sinCenter + pos.Y*sinC*cosCenter/rho)
	ra := center.RA.Radians() + math.Atan2(pos.X*sinC, rho*cosCenter*cosC-pos.Y*sinCenter*sinC)

	return coord.RaDec{RA: s1.Angle(face.NormalizePhi(ra)), Dec: s1.Angle(dec)}
}
