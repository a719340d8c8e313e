package biome

// PlainsShaping produces rolling, walkable terrain and acts as the neutral
// middle ground the other biomes blend against.
var PlainsShaping = Params{
	HeightMultiplier: 0.7,
	BaseHeightOffset: 0,
	RidgeStrength:    0.15,
	Redistribution:   1.25,
	ExpBlend:         0.08,
	ExpScale:         1.8,
}
