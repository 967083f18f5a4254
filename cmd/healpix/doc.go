// Healpix converts between sky positions and HEALPix pixel indices.
//
// Usage:
//
//	healpix [global flags] <command> [flags]
//
// Commands:
//
//	ang2pix   --theta R --phi R   colatitude/longitude (radians) to pixel
//	pix2ang   --pixel N           pixel centre as colatitude/longitude
//	radec2pix --ra DEG --dec DEG  equatorial position (degrees) to pixel
//	pix2radec --pixel N           pixel centre as right ascension/declination
//	convert   --pixel N           renumber a pixel in the other scheme
//	info                          describe the grid
//
// The grid is selected with --nside and --scheme, which default to the
// HEALPIX_NSIDE and HEALPIX_SCHEME environment variables. Results are written
// one per line to stdout. Errors go to stderr with exit code 1.
package main
