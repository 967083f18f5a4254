package ring

import (
	"math"

	"github.com/hupe1980/healpix/internal/face"
)

// FromCoord returns the RING index of c.
func FromCoord(nside int64, c face.Coord) uint64 {
	nl4 := 4 * nside
	jr := c.Ring(nside)

	var nr, before, kshift int64
	switch {
	case jr < nside: // north polar cap
		nr = jr
		before = 2 * nr * (nr - 1)
	case jr > 3*nside: // south polar cap
		nr = nl4 - jr
		before = 12*nside*nside - 2*(nr+1)*nr
	default: // equatorial belt
		nr = nside
		before = capPixels(nside) + (jr-nside)*nl4
		kshift = (jr - nside) & 1
	}

	jp := (face.PhaseOffset(c.Face)*nr + c.X - c.Y + 1 + kshift) / 2
	if jp > nl4 {
		jp -= nl4
	} else if jp < 1 {
		jp += nl4
	}

	return uint64(before + jp - 1)
}

// ToCoord returns the face coordinate of a RING index.
// pix must be in range; see face.CheckPixel.
func ToCoord(nside int64, pix uint64) face.Coord {
	p := int64(pix)
	ncap := capPixels(nside)
	npix := 12 * nside * nside
	nl2 := 2 * nside

	var iring, iphi, nr, kshift int64
	var f int
	switch {
	case p < ncap: // north polar cap
		iring = (1 + isqrt(1+2*p)) >> 1
		iphi = p + 1 - 2*iring*(iring-1)
		nr = iring
		f = int((iphi - 1) / nr)
	case p < npix-ncap: // equatorial belt
		ip := p - ncap
		tmp := ip / (4 * nside)
		iring = tmp + nside
		iphi = ip - tmp*4*nside + 1
		kshift = (iring + nside) & 1
		nr = nside

		ire := tmp + 1
		irm := nl2 + 1 - tmp
		ifm := (iphi - ire>>1 + nside - 1) / nside
		ifp := (iphi - irm>>1 + nside - 1) / nside
		f = face.DecideFace(ifp, ifm)
	default: // south polar cap
		ip := npix - p
		nr = (1 + isqrt(2*ip-1)) >> 1
		iphi = 4*nr + 1 - (ip - 2*nr*(nr-1))
		iring = 2*nl2 - nr
		f = 8 + int((iphi-1)/nr)
	}

	irt := iring - face.RingOffset(f)*nside + 1
	ipt := 2*iphi - face.PhaseOffset(f)*nr - kshift - 1
	if ipt >= nl2 {
		ipt -= 8 * nside
	}

	return face.Coord{X: (ipt - irt) >> 1, Y: (-ipt - irt) >> 1, Face: f}
}

// AngleToPixel returns the RING index of the pixel containing (theta, phi).
func AngleToPixel(nside int64, theta, phi float64) uint64 {
	return FromCoord(nside, face.FromAngle(nside, theta, phi))
}

// PixelToAngle returns the centre of a RING pixel.
func PixelToAngle(nside int64, pix uint64) (theta, phi float64, err error) {
	if err := face.CheckPixel(nside, pix); err != nil {
		return 0, 0, err
	}
	theta, phi = ToCoord(nside, pix).Angle(nside)
	return theta, phi, nil
}

// capPixels returns the number of pixels in one polar cap.
func capPixels(nside int64) int64 {
	return 2 * nside * (nside - 1)
}

// isqrt returns ⌊√v⌋ for v ≥ 0.
func isqrt(v int64) int64 {
	r := int64(math.Sqrt(float64(v)))
	for r*r > v {
		r--
	}
	for (r+1)*(r+1) <= v {
		r++
	}
	return r
}
