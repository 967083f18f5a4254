// Package face implements the discrete face coordinate shared by the HEALPix
// numbering schemes.
//
// The sphere is split into 12 base faces:
//   - 0..3  north polar faces
//   - 4..7  equatorial faces
//   - 8..11 south polar faces
//
// A pixel is addressed within its face by integer (x, y) in [0, nside).
// Both numbering schemes go through this coordinate; they only differ in how
// they flatten it into a single index.
package face
