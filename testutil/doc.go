// Package testutil provides testing utilities for healpix.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, goroutine-safe random source that samples
// directions uniformly over the sphere.
//
// # Random Positions
//
//	rng := testutil.NewRNG(seed)
//	theta, phi := rng.Angle()       // colatitude, longitude in radians
//	pts := rng.RaDecs(1000)         // equatorial positions
//	dirs := rng.Points(1000)        // unit vectors
package testutil
