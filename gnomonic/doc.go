// Package gnomonic implements the gnomonic (central) projection of the sphere
// onto the plane tangent at a reference point.
//
// Great circles map to straight lines. The projection is defined only on the
// open hemisphere centred on the tangent point; points on or beyond its
// boundary have no image.
package gnomonic
