package biome

// MountainsShaping exaggerates relief: strong ridging, a raised base and a
// heavily exponential height curve that sharpens peaks.
var MountainsShaping = Params{
	HeightMultiplier: 1.6,
	BaseHeightOffset: 10,
	RidgeStrength:    0.8,
	Redistribution:   1.6,
	ExpBlend:         0.65,
	ExpScale:         2.6,
}
