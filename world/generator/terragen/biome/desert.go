package biome

// DesertShaping flattens the terrain into low dunes: little ridging, a gentle
// exponential curve and a slightly sunken base.
var DesertShaping = Params{
	HeightMultiplier: 0.45,
	BaseHeightOffset: -6,
	RidgeStrength:    0.05,
	Redistribution:   1.1,
	ExpBlend:         0.02,
	ExpScale:         1.4,
}
