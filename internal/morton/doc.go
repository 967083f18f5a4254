// Package morton provides the Z-order (Morton) bit interleaving used by the
// NESTED numbering scheme.
//
// Layout:
//   - x occupies the even bit positions (0, 2, 4, ...)
//   - y occupies the odd bit positions (1, 3, 5, ...)
//
// Only the low 16 bits of each coordinate take part, so codes fit in 32 bits.
// Face coordinates of 2^16 or more are outside the supported range and are
// rejected before they reach this package.
package morton
