// Package biome computes per-point biome weights from an independent noise
// field and holds the per-biome terrain shaping values that are blended by
// those weights. Biome boundaries are always a continuous interpolation,
// never a hard switch.
package biome

import "github.com/stonebound/voxelterra/world/generator/terragen/noise"

// ID identifies one of the biomes of the overworld.
type ID uint8

const (
	Plains ID = iota
	Desert
	Mountains
)

// String returns the lower-case name of the biome.
func (id ID) String() string {
	switch id {
	case Plains:
		return "plains"
	case Desert:
		return "desert"
	case Mountains:
		return "mountains"
	}
	return "unknown"
}

// Params holds the per-biome terrain shaping values. HeightMultiplier scales
// the base height multiplier and BaseHeightOffset shifts the base height; the
// remaining fields replace their counterparts outright once blended.
type Params struct {
	HeightMultiplier float64
	BaseHeightOffset float64
	RidgeStrength    float64
	Redistribution   float64
	ExpBlend         float64
	ExpScale         float64
}

// Weights holds the normalized contribution of each biome at a point. The
// three weights are non-negative and sum to 1. Dominant is the biome with the
// largest weight; on ties, Mountains takes precedence over Desert, which
// takes precedence over Plains. That order is a fixed contract relied on by
// surface and vegetation rules.
type Weights struct {
	Desert    float64
	Plains    float64
	Mountains float64
	Dominant  ID
}

// span is a biome's target centre and radius on the 1D biome noise axis.
type span struct {
	centre, radius float64
}

// weight is the raw, unnormalized weight of the span at noise value n.
func (s span) weight(n float64) float64 {
	d := n - s.centre
	if d < 0 {
		d = -d
	}
	return noise.Clamp(1-d/s.radius, 0, 1)
}

var (
	desertSpan    = span{centre: 0.15, radius: 0.35}
	plainsSpan    = span{centre: 0.5, radius: 0.3}
	mountainsSpan = span{centre: 0.85, radius: 0.35}
)

// minWeightSum guards the normalisation against a raw weight sum of ~0, which
// can only occur with retuned spans that leave gaps on the noise axis.
const minWeightSum = 1e-6

// Field describes the biome selection noise field. It is sampled at a far
// lower frequency than terrain noise so biomes form large regions.
type Field struct {
	// Scale is the wavelength of the biome field in blocks; OffsetX and
	// OffsetZ translate it so it never lines up with the terrain field.
	Scale   float64
	OffsetX float64
	OffsetZ float64
	Seed    int64
}

// DefaultField returns the biome field used when no explicit tuning is
// supplied.
func DefaultField() Field {
	return Field{Scale: 640, OffsetX: 1337, OffsetZ: -4242}
}

// Sample computes the biome weights at the world position (x, z).
func (f Field) Sample(x, z float64) Weights {
	scale := f.Scale
	if scale < minWeightSum {
		scale = minWeightSum
	}
	n := noise.Value((x+f.OffsetX)/scale, (z+f.OffsetZ)/scale, f.Seed)

	d := desertSpan.weight(n)
	p := plainsSpan.weight(n)
	m := mountainsSpan.weight(n)

	sum := d + p + m
	if sum < minWeightSum {
		return Weights{Plains: 1, Dominant: Plains}
	}

	w := Weights{Desert: d / sum, Plains: p / sum, Mountains: m / sum}
	w.Dominant = w.dominant()
	return w
}

// dominant resolves the dominant biome tag. Later comparisons override
// earlier ones on >=, giving the documented tie precedence.
func (w Weights) dominant() ID {
	id, best := Plains, w.Plains
	if w.Desert >= best {
		id, best = Desert, w.Desert
	}
	if w.Mountains >= best {
		id = Mountains
	}
	return id
}
