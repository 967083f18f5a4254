package healpix

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/healpix/coord"
)

// Coverage is a set of pixels of one numbering scheme, e.g. the pixels that
// contain at least one source of a catalogue.
//
// It is backed by a 64-bit Roaring bitmap, so sparse and dense sets at any
// supported resolution stay compact. The zero value is an empty coverage
// ready to use. A Coverage is not safe for concurrent mutation.
type Coverage[S Scheme] struct {
	rb *roaring64.Bitmap
}

// bitmap returns the backing bitmap, allocating it on first use.
func (c *Coverage[S]) bitmap() *roaring64.Bitmap {
	if c.rb == nil {
		c.rb = roaring64.New()
	}
	return c.rb
}

// NewCoverage creates a coverage holding pixels.
func NewCoverage[S Scheme](pixels ...Pixel[S]) *Coverage[S] {
	c := &Coverage[S]{rb: roaring64.New()}
	for _, p := range pixels {
		c.Add(p)
	}
	return c
}

// CoverRaDec returns the coverage of the pixels of h that contain points.
func CoverRaDec[S Scheme](h Healpix, points iter.Seq[coord.RaDec]) *Coverage[S] {
	c := NewCoverage[S]()
	for pt := range points {
		c.Add(RaDecToPixel[S](h, pt))
	}
	return c
}

// Add inserts p.
func (c *Coverage[S]) Add(p Pixel[S]) {
	c.bitmap().Add(uint64(p))
}

// Remove deletes p.
func (c *Coverage[S]) Remove(p Pixel[S]) {
	if c.rb == nil {
		return
	}
	c.rb.Remove(uint64(p))
}

// Contains reports whether p is in the coverage.
func (c *Coverage[S]) Contains(p Pixel[S]) bool {
	return c.rb != nil && c.rb.Contains(uint64(p))
}

// Len returns the number of pixels.
func (c *Coverage[S]) Len() uint64 {
	if c.rb == nil {
		return 0
	}
	return c.rb.GetCardinality()
}

// IsEmpty returns true if the coverage holds no pixel.
func (c *Coverage[S]) IsEmpty() bool {
	return c.rb == nil || c.rb.IsEmpty()
}

// Pixels returns the pixels in ascending index order.
func (c *Coverage[S]) Pixels() iter.Seq[Pixel[S]] {
	return func(yield func(Pixel[S]) bool) {
		if c.rb == nil {
			return
		}
		it := c.rb.Iterator()
		for it.HasNext() {
			if !yield(Pixel[S](it.Next())) {
				return
			}
		}
	}
}

// Union returns a new coverage holding the pixels of c or o.
func (c *Coverage[S]) Union(o *Coverage[S]) *Coverage[S] {
	return &Coverage[S]{rb: roaring64.Or(c.bitmap(), o.bitmap())}
}

// Intersection returns a new coverage holding the pixels of both c and o.
func (c *Coverage[S]) Intersection(o *Coverage[S]) *Coverage[S] {
	return &Coverage[S]{rb: roaring64.And(c.bitmap(), o.bitmap())}
}

// Clone returns a deep copy of c.
func (c *Coverage[S]) Clone() *Coverage[S] {
	return &Coverage[S]{rb: c.bitmap().Clone()}
}
