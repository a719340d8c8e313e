// Package noise implements the seeded 2D value noise primitive that terrain
// and biome sampling are built on. It is hashed-lattice value noise with
// bilinear interpolation and a smoothstep ease curve, so the terrain core
// carries no dependency on a fixed external noise library.
package noise

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Value returns smooth value noise in [0, 1] at (x, z) for the seed passed.
// Identical inputs always produce bit-identical output.
func Value(x, z float64, seed int64) float64 {
	x0, z0 := math.Floor(x), math.Floor(z)
	tx, tz := Smoothstep(x-x0), Smoothstep(z-z0)

	xi, zi := int64(x0), int64(z0)
	c00 := lattice(xi, zi, seed)
	c10 := lattice(xi+1, zi, seed)
	c01 := lattice(xi, zi+1, seed)
	c11 := lattice(xi+1, zi+1, seed)

	return Lerp(Lerp(c00, c10, tx), Lerp(c01, c11, tx), tz)
}

// lattice hashes a lattice point into [0, 1). The mix constants are the
// splitmix64 finaliser, which spreads neighbouring lattice coordinates far
// apart so no axis-aligned banding shows up in the interpolated noise.
func lattice(x, z, seed int64) float64 {
	h := uint64(x)*0x9e3779b185ebca87 ^ uint64(z)*0xc2b2ae3d27d4eb4f ^ uint64(seed)
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return float64(h>>11) / (1 << 53)
}

// OctaveOffset derives a large, well-spread 2D offset from (seed, octave).
// Sampling each fractal octave at its own offset keeps the octaves
// decorrelated: without it, every octave would peak at the same lattice
// points and the terrain would show self-similar artefacts.
func OctaveOffset(seed int64, octave int) (float64, float64) {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(seed))
	binary.LittleEndian.PutUint64(buf[8:], uint64(octave))
	h := xxhash.Sum64(buf[:])

	const span = 1 << 16
	ox := float64(uint32(h)) / float64(math.MaxUint32) * span
	oz := float64(uint32(h>>32)) / float64(math.MaxUint32) * span
	return ox, oz
}

// Smoothstep applies the ease curve 3t² - 2t³ to t in [0, 1].
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp returns v limited to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
