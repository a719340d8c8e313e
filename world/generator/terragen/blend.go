package terragen

import "github.com/stonebound/voxelterra/world/generator/terragen/biome"

// AdjustParameters blends the per-biome shaping values into base using the
// normalized weights passed. Every shaping field is a weighted sum of the
// three biomes' values, so terrain changes continuously across biome
// boundaries; the result is clamped by the sampler like any other parameter
// set.
func AdjustParameters(base Parameters, w biome.Weights) Parameters {
	d, p, m := biome.DesertShaping, biome.PlainsShaping, biome.MountainsShaping
	mix := func(dv, pv, mv float64) float64 {
		return w.Desert*dv + w.Plains*pv + w.Mountains*mv
	}

	out := base
	out.HeightMultiplier = base.HeightMultiplier * mix(d.HeightMultiplier, p.HeightMultiplier, m.HeightMultiplier)
	out.BaseHeight = base.BaseHeight + mix(d.BaseHeightOffset, p.BaseHeightOffset, m.BaseHeightOffset)
	out.RidgeStrength = mix(d.RidgeStrength, p.RidgeStrength, m.RidgeStrength)
	out.Redistribution = mix(d.Redistribution, p.Redistribution, m.Redistribution)
	out.ExpBlend = mix(d.ExpBlend, p.ExpBlend, m.ExpBlend)
	out.ExpScale = mix(d.ExpScale, p.ExpScale, m.ExpScale)
	return out
}
