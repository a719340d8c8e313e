package terragen

import "github.com/stonebound/voxelterra/world/generator/terragen/noise"

// epsilon is the floor applied to divisors and exponents so degenerate
// parameters degrade to flat terrain instead of faulting.
const epsilon = 1e-6

// Parameters control the shape of sampled terrain. Every field has a safe
// default and is defensively clamped when sampling, so callers may pass
// arbitrary values without risking NaN or infinite heights.
type Parameters struct {
	// Scale is the horizontal wavelength of the base noise in blocks.
	Scale float64
	// Octaves is the number of fractal layers accumulated.
	Octaves int
	// Lacunarity multiplies the frequency between octaves; Persistence
	// multiplies the amplitude.
	Lacunarity  float64
	Persistence float64
	// Redistribution is the power applied to the normalized noise value,
	// biasing the height distribution towards valleys (> 1) or plateaus (< 1).
	Redistribution float64
	// BaseHeight and HeightMultiplier map the redistributed value onto a
	// linear world height.
	BaseHeight       float64
	HeightMultiplier float64
	// RidgeStrength in [0, 1] blends ridge-reshaped noise into each octave,
	// producing sharp crests at 1 and untouched rolling noise at 0.
	RidgeStrength float64
	// WarpStrength and WarpFrequency control domain warping of the sample
	// coordinates. A strength of 0 disables warping.
	WarpStrength  float64
	WarpFrequency float64
	// ExpBase, ExpScale and ExpBlend define the exponential height curve and
	// how strongly it replaces the linear one. High blend values sharpen
	// peaks dramatically.
	ExpBase  float64
	ExpScale float64
	ExpBlend float64
	// MinHeight and MaxHeight clamp the final height.
	MinHeight float64
	MaxHeight float64
	// OffsetX and OffsetZ translate the sample position, and Seed selects
	// the noise field.
	OffsetX float64
	OffsetZ float64
	Seed    int64
}

// DefaultParameters returns the parameter set used when no explicit tuning is
// supplied: rolling plains with occasional ridged, exponentially sharpened
// peaks.
func DefaultParameters() Parameters {
	return Parameters{
		Scale:            180,
		Octaves:          5,
		Lacunarity:       2,
		Persistence:      0.5,
		Redistribution:   1.35,
		BaseHeight:       40,
		HeightMultiplier: 72,
		RidgeStrength:    0.35,
		WarpStrength:     18,
		WarpFrequency:    0.75,
		ExpBase:          1.9,
		ExpScale:         2.2,
		ExpBlend:         0.25,
		MinHeight:        1,
		MaxHeight:        250,
	}
}

// sanitised returns a copy of p with every field forced into its safe range.
func (p Parameters) sanitised() Parameters {
	if p.Scale < epsilon {
		p.Scale = epsilon
	}
	if p.Octaves < 1 {
		p.Octaves = 1
	}
	if p.Lacunarity < epsilon {
		p.Lacunarity = epsilon
	}
	if p.Persistence < 0 {
		p.Persistence = 0
	}
	if p.Redistribution < epsilon {
		p.Redistribution = epsilon
	}
	p.RidgeStrength = noise.Clamp(p.RidgeStrength, 0, 1)
	p.ExpBlend = noise.Clamp(p.ExpBlend, 0, 1)
	if p.ExpBase < epsilon {
		p.ExpBase = epsilon
	}
	if p.WarpFrequency < 0 {
		p.WarpFrequency = 0
	}
	if p.MinHeight > p.MaxHeight {
		p.MinHeight, p.MaxHeight = p.MaxHeight, p.MinHeight
	}
	return p
}
