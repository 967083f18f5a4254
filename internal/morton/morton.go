package morton

const (
	// CoordBits is the number of bits of each coordinate that are interleaved.
	CoordBits = 16

	// MaxCoord is the largest coordinate that round-trips exactly.
	MaxCoord = 1<<CoordBits - 1
)

// Interleave returns the Morton code of (x, y).
func Interleave(x, y uint32) uint64 {
	return spread(x) | spread(y)<<1
}

// Deinterleave is the inverse of Interleave.
func Deinterleave(code uint64) (x, y uint32) {
	return compact(code), compact(code >> 1)
}

// spread moves the low 16 bits of v to the even bit positions.
func spread(v uint32) uint64 {
	x := uint64(v & MaxCoord)
	x = (x | x<<8) & 0x00FF00FF
	x = (x | x<<4) & 0x0F0F0F0F
	x = (x | x<<2) & 0x33333333
	x = (x | x<<1) & 0x55555555
	return x
}

// compact gathers the even bits of v into the low 16 bits.
func compact(v uint64) uint32 {
	x := v & 0x55555555
	x = (x | x>>1) & 0x33333333
	x = (x | x>>2) & 0x0F0F0F0F
	x = (x | x>>4) & 0x00FF00FF
	x = (x | x>>8) & 0x0000FFFF
	return uint32(x)
}
