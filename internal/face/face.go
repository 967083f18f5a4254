package face

import (
	"fmt"
	"math"
)

// Count is the number of base faces.
const Count = 12

const (
	twoPi  = 2 * math.Pi
	halfPi = math.Pi / 2

	// polarThreshold is |z| above which sin θ replaces sqrt(1 - |z|) terms.
	polarThreshold = 0.99
)

// ringOffsets holds, per face, the ring index of the face's southern corner
// in units of nside.
var ringOffsets = [Count]int64{2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4}

// phaseOffsets holds, per face, the azimuth of the face centre in units of π/4.
var phaseOffsets = [Count]int64{1, 3, 5, 7, 0, 2, 4, 6, 1, 3, 5, 7}

// RingOffset returns the ring-offset multiplier of face f.
func RingOffset(f int) int64 { return ringOffsets[f] }

// PhaseOffset returns the phase offset of face f.
func PhaseOffset(f int) int64 { return phaseOffsets[f] }

// Coord is a pixel address within one of the 12 base faces.
type Coord struct {
	X    int64
	Y    int64
	Face int
}

func (c Coord) String() string {
	return fmt.Sprintf("face=%d x=%d y=%d", c.Face, c.X, c.Y)
}

// Valid reports whether c lies on the grid of the given resolution.
func (c Coord) Valid(nside int64) bool {
	return c.Face >= 0 && c.Face < Count &&
		c.X >= 0 && c.X < nside &&
		c.Y >= 0 && c.Y < nside
}

// Ring returns the 1-based ring number of c counted from the north pole.
func (c Coord) Ring(nside int64) int64 {
	return ringOffsets[c.Face]*nside - c.X - c.Y - 1
}

// NormalizePhi maps phi into [0, 2π).
func NormalizePhi(phi float64) float64 {
	p := math.Mod(phi, twoPi)
	if p < 0 {
		p += twoPi
	}
	if p >= twoPi {
		p = 0
	}
	return p
}

// DecideFace resolves the face from the two edge-line candidates of the
// equatorial belt.
func DecideFace(ifp, ifm int64) int {
	switch {
	case ifp == ifm:
		return int(ifp | 4)
	case ifp < ifm:
		return int(ifp)
	default:
		return int(ifm + 8)
	}
}

// FromAngle returns the face coordinate of the pixel containing (theta, phi).
// nside must be a power of two. A NaN or infinite angle is read as the north
// pole at φ = 0, so the result is always on the grid.
func FromAngle(nside int64, theta, phi float64) Coord {
	if !isFinite(theta) || !isFinite(phi) {
		theta, phi = 0, 0
	}

	z := math.Cos(theta)
	za := math.Abs(z)
	ns := float64(nside)

	tt := NormalizePhi(phi) / halfPi // [0, 4)
	if tt >= 4 {
		tt = 0
	}

	if za <= 2.0/3.0 {
		// Equatorial belt: jp and jm index the ascending and descending edge lines.
		temp1 := ns * (0.5 + tt)
		temp2 := ns * (z * 0.75)
		jp := int64(temp1 - temp2)
		jm := int64(temp1 + temp2)

		return Coord{
			X:    jm & (nside - 1),
			Y:    nside - (jp & (nside - 1)) - 1,
			Face: DecideFace(jp/nside, jm/nside),
		}
	}

	// Polar caps.
	ntt := int64(tt)
	if ntt >= 4 {
		ntt = 3
	}
	tp := tt - float64(ntt)

	var tmp float64
	if za > polarThreshold {
		tmp = ns * math.Sin(theta) / math.Sqrt((1+za)/3)
	} else {
		tmp = ns * math.Sqrt(3*(1-za))
	}

	jp := min(max(int64(tp*tmp), 0), nside-1)
	jm := min(max(int64((1-tp)*tmp), 0), nside-1)

	if z >= 0 {
		return Coord{X: nside - jm - 1, Y: nside - jp - 1, Face: int(ntt)}
	}
	return Coord{X: jp, Y: jm, Face: int(ntt) + 8}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Angle returns the colatitude and longitude of the centre of c.
func (c Coord) Angle(nside int64) (theta, phi float64) {
	jr := c.Ring(nside)

	var nr int64
	switch {
	case jr < nside: // north polar cap
		nr = jr
		theta = capTheta(nr, nside, 1)
	case jr > 3*nside: // south polar cap
		nr = 4*nside - jr
		theta = capTheta(nr, nside, -1)
	default: // equatorial belt
		nr = nside
		theta = math.Acos(float64(2*nside-jr) * 2 / (3 * float64(nside)))
	}

	tmp := phaseOffsets[c.Face]*nr + c.X - c.Y
	if tmp < 0 {
		tmp += 8 * nr
	}
	phi = (math.Pi / 4) * float64(tmp) / float64(nr)

	return theta, NormalizePhi(phi)
}

// capTheta returns the colatitude of polar ring nr; sign selects the cap.
func capTheta(nr, nside int64, sign float64) float64 {
	t := float64(nr*nr) / (3 * float64(nside) * float64(nside))
	z := sign * (1 - t)
	return math.Atan2(math.Sqrt(t*(2-t)), z)
}
