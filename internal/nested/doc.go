// Package nested implements the hierarchical (NESTED) HEALPix numbering.
//
// A pixel index is face·nside² plus the Morton code of the face coordinate,
// so pixels that are close on the sphere tend to have close indices and the
// four children of a pixel at resolution 2·nside are 4p..4p+3.
package nested
