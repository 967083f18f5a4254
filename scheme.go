package healpix

import (
	"fmt"

	"github.com/hupe1980/healpix/internal/face"
	"github.com/hupe1980/healpix/internal/nested"
	"github.com/hupe1980/healpix/internal/ring"
)

// Scheme is a pixel numbering convention.
//
// The set of schemes is closed: Nested and Ring are the only implementations.
// A scheme is used as a type argument; its zero value carries no state.
type Scheme interface {
	fmt.Stringer

	angleToPixel(nside int64, theta, phi float64) uint64
	pixelToAngle(nside int64, pix uint64) (theta, phi float64, err error)
	toCoord(nside int64, pix uint64) face.Coord
	fromCoord(nside int64, c face.Coord) uint64
}

// Nested is the hierarchical numbering scheme. Indices follow a Z-order curve
// within each base face, so nearby pixels tend to have nearby indices.
type Nested struct{}

func (Nested) String() string { return "NESTED" }

func (Nested) angleToPixel(nside int64, theta, phi float64) uint64 {
	return nested.AngleToPixel(nside, theta, phi)
}

func (Nested) pixelToAngle(nside int64, pix uint64) (float64, float64, error) {
	return nested.PixelToAngle(nside, pix)
}

func (Nested) toCoord(nside int64, pix uint64) face.Coord { return nested.ToCoord(nside, pix) }

func (Nested) fromCoord(nside int64, c face.Coord) uint64 { return nested.FromCoord(nside, c) }

// Ring is the ring numbering scheme. Indices increase with colatitude ring,
// then eastwards within a ring.
type Ring struct{}

func (Ring) String() string { return "RING" }

func (Ring) angleToPixel(nside int64, theta, phi float64) uint64 {
	return ring.AngleToPixel(nside, theta, phi)
}

func (Ring) pixelToAngle(nside int64, pix uint64) (float64, float64, error) {
	return ring.PixelToAngle(nside, pix)
}

func (Ring) toCoord(nside int64, pix uint64) face.Coord { return ring.ToCoord(nside, pix) }

func (Ring) fromCoord(nside int64, c face.Coord) uint64 { return ring.FromCoord(nside, c) }

// SchemeName returns the name of S.
func SchemeName[S Scheme]() string {
	var s S
	return s.String()
}
