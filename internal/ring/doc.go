// Package ring implements the RING HEALPix numbering.
//
// Pixels are numbered ring by ring from the north pole to the south pole, and
// from φ = 0 eastwards within a ring. The index layout is
//
//	[north cap: ncap = 2·nside·(nside-1) pixels]
//	[equatorial belt: 2·nside+1 rings of 4·nside pixels]
//	[south cap: ncap pixels]
package ring
