package nested

import (
	"github.com/hupe1980/healpix/internal/face"
	"github.com/hupe1980/healpix/internal/morton"
)

// FromCoord returns the NESTED index of c.
func FromCoord(nside int64, c face.Coord) uint64 {
	npface := uint64(nside * nside)
	return uint64(c.Face)*npface + morton.Interleave(uint32(c.X), uint32(c.Y))
}

// ToCoord returns the face coordinate of a NESTED index.
// pix must be in range; see face.CheckPixel.
func ToCoord(nside int64, pix uint64) face.Coord {
	npface := uint64(nside * nside)
	x, y := morton.Deinterleave(pix % npface)
	return face.Coord{X: int64(x), Y: int64(y), Face: int(pix / npface)}
}

// AngleToPixel returns the NESTED index of the pixel containing (theta, phi).
func AngleToPixel(nside int64, theta, phi float64) uint64 {
	return FromCoord(nside, face.FromAngle(nside, theta, phi))
}

// PixelToAngle returns the centre of a NESTED pixel.
func PixelToAngle(nside int64, pix uint64) (theta, phi float64, err error) {
	if err := face.CheckPixel(nside, pix); err != nil {
		return 0, 0, err
	}
	theta, phi = ToCoord(nside, pix).Angle(nside)
	return theta, phi, nil
}
