package terragen

import (
	"math"

	"github.com/stonebound/voxelterra/world/generator/terragen/noise"
)

// HeightSample is the result of one sampler invocation. Normalized and
// Redistributed are the raw and power-reshaped fractal values in [0, 1] that
// the column resolver uses for its layering decisions.
type HeightSample struct {
	Height        float64
	Normalized    float64
	Redistributed float64
}

// Seed offsets separating the two warp noise fields from the terrain field
// and from each other.
const (
	warpSeedX = 0x5f3a6b
	warpSeedZ = 0x2e194d
)

// SampleHeight samples the terrain height at the world position (x, z). It is
// pure and deterministic for a fixed parameter set: identical inputs yield
// bit-identical samples. Degenerate parameters are clamped, never rejected;
// the worst case is flat terrain.
func SampleHeight(x, z float64, p Parameters) HeightSample {
	p = p.sanitised()

	sx := (x + p.OffsetX) / p.Scale
	sz := (z + p.OffsetZ) / p.Scale

	if p.WarpStrength > epsilon {
		// Two independent noise lookups at frequency-shifted, seed-derived
		// offsets form the warp vector. Warping the sample coordinates breaks
		// up the regular lattice patterns of the base noise.
		wox, woz := noise.OctaveOffset(p.Seed^warpSeedX, 0)
		wx := noise.Value(sx*p.WarpFrequency+wox, sz*p.WarpFrequency+woz, p.Seed^warpSeedX)*2 - 1
		wox, woz = noise.OctaveOffset(p.Seed^warpSeedZ, 0)
		wz := noise.Value(sx*p.WarpFrequency+wox, sz*p.WarpFrequency+woz, p.Seed^warpSeedZ)*2 - 1

		sx += wx * p.WarpStrength / p.Scale
		sz += wz * p.WarpStrength / p.Scale
	}

	var (
		sum, ampSum float64
		amp, freq   = 1.0, 1.0
	)
	for i := 0; i < p.Octaves; i++ {
		ox, oz := noise.OctaveOffset(p.Seed, i)
		v := noise.Value(sx*freq+ox, sz*freq+oz, p.Seed)

		// Reshape the octave into a ridge value peaking where the raw noise
		// crosses its midpoint, then blend it in by ridge strength.
		ridge := math.Pow(1-math.Abs(2*v-1), 2.2)
		sum += noise.Lerp(v, ridge, p.RidgeStrength) * amp

		ampSum += amp
		amp *= p.Persistence
		freq *= p.Lacunarity
	}

	normalized := noise.Clamp(sum/ampSum, 0, 1)
	redistributed := math.Pow(normalized, p.Redistribution)

	linear := p.BaseHeight + redistributed*p.HeightMultiplier
	exponential := math.Pow(p.ExpBase, redistributed*p.ExpScale) * p.HeightMultiplier
	height := noise.Lerp(linear, exponential, p.ExpBlend)

	return HeightSample{
		Height:        noise.Clamp(height, p.MinHeight, p.MaxHeight),
		Normalized:    normalized,
		Redistributed: redistributed,
	}
}
