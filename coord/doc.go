// Package coord defines the angular value types consumed and produced by the
// healpix package.
//
// Angles are github.com/golang/geo/s1 angles, so they interoperate directly
// with s2.LatLng and s2.Point:
//
//	c := coord.RaDecFromDegrees(83.63, 22.01) // Crab nebula
//	p := c.Point()                            // unit vector
//	s := c.Spherical()                        // colatitude / longitude
//
// Conventions:
//   - Spherical: colatitude θ ∈ [0, π] from the north pole, longitude φ eastwards
//   - RaDec: right ascension and declination, dec = π/2 − θ, ra = φ mod 2π
package coord
