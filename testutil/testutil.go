package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/hupe1980/healpix/coord"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64n returns a pseudo-random number in [0,n).
func (r *RNG) Uint64n(n uint64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n <= math.MaxInt64 {
		return uint64(r.rand.Int63n(int64(n)))
	}
	return r.rand.Uint64() % n
}

// Angle returns a direction uniform on the sphere as colatitude theta in
// [0, π] and longitude phi in [0, 2π).
func (r *RNG) Angle() (theta, phi float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.angle()
}

// Angles returns n directions uniform on the sphere.
func (r *RNG) Angles(n int) []coord.Spherical {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]coord.Spherical, n)
	for i := range out {
		out[i] = coord.SphericalFromRadians(r.angle())
	}
	return out
}

// RaDecs returns n equatorial positions uniform on the sphere.
func (r *RNG) RaDecs(n int) []coord.RaDec {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]coord.RaDec, n)
	for i := range out {
		theta, phi := r.angle()
		out[i] = coord.RaDec{
			RA:  s1.Angle(phi),
			Dec: s1.Angle(math.Pi/2 - theta),
		}
	}
	return out
}

// Points returns n unit vectors uniform on the sphere.
func (r *RNG) Points(n int) []s2.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]s2.Point, n)
	for i := range out {
		out[i] = coord.SphericalFromRadians(r.angle()).Point()
	}
	return out
}

// Near returns a position within radius of center. The offset is not
// uniform over the disc; it only needs to stay close.
func (r *RNG) Near(center coord.RaDec, radius s1.Angle) coord.RaDec {
	r.mu.Lock()
	defer r.mu.Unlock()

	d := s1.Angle(r.rand.Float64()) * radius / math.Sqrt2
	dec := center.Dec + s1.Angle(2*r.rand.Float64()-1)*d
	dec = min(max(dec, -math.Pi/2), math.Pi/2)

	ra := center.RA
	if c := math.Cos(dec.Radians()); c > 1e-9 {
		ra += s1.Angle(2*r.rand.Float64()-1) * d / s1.Angle(c) / 2
	}
	return coord.RaDec{RA: ra, Dec: dec}
}

// angle samples cos θ uniformly in [-1, 1], which is uniform in area.
func (r *RNG) angle() (theta, phi float64) {
	z := 2*r.rand.Float64() - 1
	return math.Acos(z), 2 * math.Pi * r.rand.Float64()
}
